package snmp

import (
	"fmt"
	"slices"
	"sync"
)

// OID is a lazy facade over the various raw forms an object identifier
// arrives in: numeric arcs (Oid, []uint32, []int), a dotted string, an
// *ObjectIdentity handle, or an *ObjectType handle.
//
// The raw form is never decoded at construction time. An identity handle
// may still be waiting for its resolution context, and forcing it early
// fails; querying an agent does not require knowing the MIB name of an
// OID. Decoding happens on the first call that needs the numeric tuple
// and the result is cached.
type OID struct {
	raw any

	mu       sync.Mutex
	parts    Oid
	resolved bool
}

// NewOID wraps a raw identifier representation without decoding it.
func NewOID(value any) *OID {
	return &OID{raw: value}
}

// Raw returns the representation the OID was constructed from.
func (o *OID) Raw() any { return o.raw }

// ResolveNumeric decodes the raw form into its numeric tuple. The first
// successful call caches the tuple; later calls return it without
// re-decoding. Failures are not cached: an identity handle that gains its
// resolution context later may succeed on a retry. Fails with
// ErrMalformedIdentifier when the raw form cannot yield a tuple.
// Callers must not modify the returned slice.
func (o *OID) ResolveNumeric() (Oid, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.resolved {
		return o.parts, nil
	}
	parts, err := decodeRawOID(o.raw)
	if err != nil {
		return nil, err
	}
	o.parts = parts
	o.resolved = true
	return parts, nil
}

func decodeRawOID(raw any) (Oid, error) {
	switch v := raw.(type) {
	case Oid:
		return cloneArcs(v)
	case []uint32:
		return cloneArcs(v)
	case []int:
		if len(v) == 0 {
			return nil, fmt.Errorf("%w: empty arc sequence", ErrMalformedIdentifier)
		}
		arcs := make(Oid, len(v))
		for i, arc := range v {
			if arc < 0 {
				return nil, fmt.Errorf("%w: negative arc %d", ErrMalformedIdentifier, arc)
			}
			arcs[i] = uint32(arc)
		}
		return arcs, nil
	case string:
		return ParseOID(v)
	case *ObjectIdentity:
		if v == nil {
			return nil, fmt.Errorf("%w: nil identity", ErrMalformedIdentifier)
		}
		arcs, ok := v.Arcs()
		if !ok {
			return nil, fmt.Errorf("%w: identity not fully initialized", ErrMalformedIdentifier)
		}
		return arcs, nil
	case *ObjectType:
		if v == nil || v.Identity() == nil {
			return nil, fmt.Errorf("%w: object type has no identity", ErrMalformedIdentifier)
		}
		return decodeRawOID(v.Identity())
	case nil:
		return nil, fmt.Errorf("%w: nil identifier", ErrMalformedIdentifier)
	default:
		return nil, fmt.Errorf("%w: cannot decode %T as an OID", ErrMalformedIdentifier, raw)
	}
}

func cloneArcs(v []uint32) (Oid, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: empty arc sequence", ErrMalformedIdentifier)
	}
	return slices.Clone(Oid(v)), nil
}

// ResolveSymbol returns the MIB symbol and instance indexes. Only an OID
// built from an *ObjectIdentity can answer: numeric and string forms would
// need a MIB lookup this package does not own, so they fail with
// ErrUnsupportedOperation.
func (o *OID) ResolveSymbol() (name string, indexes []string, err error) {
	oi, ok := o.raw.(*ObjectIdentity)
	if !ok || oi == nil {
		return "", nil, fmt.Errorf("%w: no symbolic identity to resolve", ErrUnsupportedOperation)
	}
	name, indexes, ok = oi.Symbol()
	if !ok {
		return "", nil, fmt.Errorf("%w: identity carries no symbol", ErrUnsupportedOperation)
	}
	return name, indexes, nil
}

// AsObjectType returns a form suitable for re-submission to the transport
// layer. If the raw form already is an *ObjectType it is returned as-is,
// and an *ObjectIdentity is wrapped directly; resolving either here could
// fail for handles that still need dynamic resolution context. Only bare
// numeric and string forms are resolved into a fresh handle.
func (o *OID) AsObjectType() (*ObjectType, error) {
	switch v := o.raw.(type) {
	case *ObjectType:
		if v != nil {
			return v, nil
		}
	case *ObjectIdentity:
		if v != nil {
			return NewObjectType(v), nil
		}
	}
	parts, err := o.ResolveNumeric()
	if err != nil {
		return nil, err
	}
	return NewObjectType(NewObjectIdentity(parts)), nil
}

// Format returns the canonical dotted-decimal string, resolving first.
func (o *OID) Format() (string, error) {
	parts, err := o.ResolveNumeric()
	if err != nil {
		return "", err
	}
	return parts.String(), nil
}

// Equal reports whether two OIDs resolve to the same numeric tuple. Both
// sides are resolved, so an OID built from "1.3.6.1" equals one built from
// Oid{1, 3, 6, 1}. Resolution failures propagate.
func (o *OID) Equal(other *OID) (bool, error) {
	if other == nil {
		return false, nil
	}
	a, err := o.ResolveNumeric()
	if err != nil {
		return false, err
	}
	b, err := other.ResolveNumeric()
	if err != nil {
		return false, err
	}
	return a.Equal(b), nil
}

// String returns the dotted form for display. A raw form that cannot be
// resolved renders its error inline rather than pretending to be a tuple;
// use Format when the failure must be observable.
func (o *OID) String() string {
	parts, err := o.ResolveNumeric()
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return parts.String()
}
