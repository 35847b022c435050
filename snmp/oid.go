package snmp

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Oid is a sequence of arc values representing an SNMP Object Identifier.
// It is a defined type (not alias) so methods can be attached.
type Oid []uint32

// ParseOID parses an OID from a dotted string (e.g., "1.3.6.1.2.1").
// A single leading dot is accepted (net-snmp style). Empty input, empty
// arcs, non-digit characters and arcs that overflow 32 bits all fail with
// ErrMalformedIdentifier.
func ParseOID(s string) (Oid, error) {
	orig := s
	if len(s) > 0 && s[0] == '.' {
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("%w: empty OID string", ErrMalformedIdentifier)
	}

	var arcs []uint32
	var current uint64
	var hasDigit bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			current = current*10 + uint64(c-'0')
			if current > math.MaxUint32 {
				return nil, fmt.Errorf("%w: arc overflows 32 bits in %q", ErrMalformedIdentifier, orig)
			}
			hasDigit = true
		case c == '.':
			if !hasDigit {
				return nil, fmt.Errorf("%w: empty arc in %q", ErrMalformedIdentifier, orig)
			}
			arcs = append(arcs, uint32(current))
			current = 0
			hasDigit = false
		default:
			return nil, fmt.Errorf("%w: invalid character %q in %q", ErrMalformedIdentifier, c, orig)
		}
	}
	if !hasDigit {
		return nil, fmt.Errorf("%w: trailing dot in %q", ErrMalformedIdentifier, orig)
	}
	arcs = append(arcs, uint32(current))
	return arcs, nil
}

// String returns the dotted string representation (e.g., "1.3.6.1.2.1").
func (o Oid) String() string {
	if len(o) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d", o[0])
	for _, arc := range o[1:] {
		fmt.Fprintf(&b, ".%d", arc)
	}
	return b.String()
}

// Parent returns the parent OID (all arcs except the last).
// Returns nil if the OID is empty or has only one arc.
func (o Oid) Parent() Oid {
	if len(o) <= 1 {
		return nil
	}
	return slices.Clone(o[:len(o)-1])
}

// Child returns a new OID with the given arc appended.
func (o Oid) Child(arc uint32) Oid {
	result := make(Oid, len(o)+1)
	copy(result, o)
	result[len(result)-1] = arc
	return result
}

// HasPrefix returns true if this OID starts with the given prefix.
func (o Oid) HasPrefix(prefix Oid) bool {
	if len(prefix) > len(o) {
		return false
	}
	for i, arc := range prefix {
		if o[i] != arc {
			return false
		}
	}
	return true
}

// Equal returns true if the OIDs are identical.
func (o Oid) Equal(other Oid) bool {
	return slices.Equal(o, other)
}

// Compare returns -1 if o < other, 0 if equal, 1 if o > other.
// Comparison is lexicographic by arc value.
func (o Oid) Compare(other Oid) int {
	return slices.Compare(o, other)
}

// LastArc returns the last arc value, or 0 if empty.
func (o Oid) LastArc() uint32 {
	if len(o) == 0 {
		return 0
	}
	return o[len(o)-1]
}
