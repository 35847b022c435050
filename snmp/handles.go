package snmp

import "slices"

// ObjectIdentity is a resolution handle for an identifier. It may carry a
// MIB symbol (name plus instance indexes), numeric arcs, or both. A handle
// created from a symbol alone is not resolved: a MIB-owning layer attaches
// the arcs later via SetArcs, and until then the handle cannot yield a
// numeric tuple. This mirrors how transport stacks hand out identities that
// still need dynamic resolution context.
type ObjectIdentity struct {
	symbol  string
	indexes []string
	arcs    Oid
	hasArcs bool
}

// NewObjectIdentity creates a resolved identity from numeric arcs.
func NewObjectIdentity(arcs Oid) *ObjectIdentity {
	return &ObjectIdentity{arcs: slices.Clone(arcs), hasArcs: true}
}

// NewSymbolicIdentity creates an identity from a MIB symbol and optional
// instance indexes. The identity is unresolved until SetArcs is called.
func NewSymbolicIdentity(symbol string, indexes ...string) *ObjectIdentity {
	return &ObjectIdentity{symbol: symbol, indexes: slices.Clone(indexes)}
}

// Symbol returns the MIB symbol and instance indexes, with ok=false when
// the identity was built from arcs alone.
func (oi *ObjectIdentity) Symbol() (name string, indexes []string, ok bool) {
	if oi.symbol == "" {
		return "", nil, false
	}
	return oi.symbol, slices.Clone(oi.indexes), true
}

// Arcs returns the numeric arcs, with ok=false when the identity has not
// been resolved yet.
func (oi *ObjectIdentity) Arcs() (Oid, bool) {
	if !oi.hasArcs {
		return nil, false
	}
	return slices.Clone(oi.arcs), true
}

// SetArcs attaches numeric arcs after a MIB lookup. Attaching arcs marks
// the identity resolved; the symbol, if any, is kept.
func (oi *ObjectIdentity) SetArcs(arcs Oid) {
	oi.arcs = slices.Clone(arcs)
	oi.hasArcs = true
}

// ObjectType pairs an identity with an optional value payload. It is the
// form the transport layer accepts when re-issuing a request for an
// identifier obtained from a prior response.
type ObjectType struct {
	identity *ObjectIdentity
	value    any
}

// NewObjectType creates an ObjectType around an identity, with no value.
func NewObjectType(identity *ObjectIdentity) *ObjectType {
	return &ObjectType{identity: identity}
}

// NewObjectTypeWithValue creates an ObjectType carrying a value payload.
func NewObjectTypeWithValue(identity *ObjectIdentity, value any) *ObjectType {
	return &ObjectType{identity: identity, value: value}
}

// Identity returns the wrapped identity.
func (ot *ObjectType) Identity() *ObjectIdentity { return ot.identity }

// Value returns the value payload, or nil.
func (ot *ObjectType) Value() any { return ot.value }
