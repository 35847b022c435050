package snmp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/AmariRules/integrations-core/internal/ber"
)

// Value wraps one decoded SNMP value and abstracts away the details of its
// type and decoding. It is a one-shot classifier and coercer: immutable
// after construction, with no state beyond the wrapped payload.
type Value struct {
	typeName string
	v        any  // payload; nil when oid is set
	oid      *OID // set when the value is itself an identifier
}

// NewValue wraps a value tagged with its declared type name (one of the
// names produced by TypeName, or a refined name such as
// "CounterBasedGauge64" supplied by a MIB-aware decoder). Identifier-typed
// payloads, e.g. a result for sysObjectID, are rewrapped as an inner OID.
func NewValue(typeName string, v any) *Value {
	if oidTypes[typeName] {
		return &Value{typeName: typeName, oid: NewOID(v)}
	}
	switch v.(type) {
	case Oid, *ObjectIdentity:
		return &Value{typeName: typeName, oid: NewOID(v)}
	}
	return &Value{typeName: typeName, v: v}
}

// TypeName returns the declared type name the value was tagged with.
func (v *Value) TypeName() string { return v.typeName }

// Kind classifies the value by its declared type name.
func (v *Value) Kind() Kind {
	if v.oid != nil {
		return KindOID
	}
	return classifyTypeName(v.typeName)
}

// OID returns the inner identifier for identifier-kind values.
func (v *Value) OID() (*OID, bool) {
	if v.oid == nil {
		return nil, false
	}
	return v.oid, true
}

// Int coerces the value to an integer. Identifier-kind values fail with
// ErrNotNumeric; identifiers are never numerically coercible.
func (v *Value) Int() (int64, error) {
	if v.oid != nil {
		return 0, fmt.Errorf("%w: %s holds an object identifier", ErrNotNumeric, v.typeName)
	}
	return toInt64(v.v)
}

// Float coerces the value to a float. An Opaque payload that is still raw
// octets is decoded first: the declared tag does not reveal the inner
// numeric type, so the payload must be unwrapped before coercing. Decode
// failures propagate unchanged. Identifier-kind values fail with
// ErrNotNumeric.
func (v *Value) Float() (float64, error) {
	if v.oid != nil {
		return 0, fmt.Errorf("%w: %s holds an object identifier", ErrNotNumeric, v.typeName)
	}
	if v.Kind() == KindOpaque {
		if b, ok := v.v.([]byte); ok {
			inner, err := ber.DecodeOpaque(b)
			if err != nil {
				return 0, err
			}
			return toFloat64(inner)
		}
	}
	return toFloat64(v.v)
}

// Bool reports whether the poll returned usable data. Identifier-kind
// values are always present, whatever they resolve to; the two
// instance/object sentinels are not. Everything else, EndOfMibView
// included, counts as present.
func (v *Value) Bool() bool {
	if v.oid != nil {
		return true
	}
	switch v.Kind() {
	case KindNoSuchInstance, KindNoSuchObject:
		return false
	}
	return true
}

// String returns a human-readable rendering: the identifier's dotted form,
// the fixed sentinel literals, or a pretty-printed payload.
func (v *Value) String() string {
	if v.oid != nil {
		return v.oid.String()
	}
	switch v.Kind() {
	case KindNoSuchInstance:
		return TypeNoSuchInstance
	case KindNoSuchObject:
		return TypeNoSuchObject
	case KindEndOfMibView:
		return TypeEndOfMibView
	}
	return prettyPrint(v.v)
}

func toInt64(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int8:
		return int64(t), nil
	case int16:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint:
		return int64(t), nil
	case uint8:
		return int64(t), nil
	case uint16:
		return int64(t), nil
	case uint32:
		return int64(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, fmt.Errorf("%w: %d overflows int64", ErrNotNumeric, t)
		}
		return int64(t), nil
	case float32:
		return int64(t), nil
	case float64:
		return int64(t), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, t)
		}
		return n, nil
	case []byte:
		return toInt64(string(t))
	}
	return 0, fmt.Errorf("%w: cannot coerce %T to integer", ErrNotNumeric, v)
}

func toFloat64(v any) (float64, error) {
	switch t := v.(type) {
	case float32:
		return float64(t), nil
	case float64:
		return t, nil
	case uint64:
		// Counters near the 64-bit ceiling overflow the int64 path.
		return float64(t), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNotNumeric, t)
		}
		return f, nil
	case []byte:
		return toFloat64(string(t))
	}
	n, err := toInt64(v)
	if err != nil {
		return 0, err
	}
	return float64(n), nil
}

func prettyPrint(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		if isPrintable(t) {
			return string(t)
		}
		return fmt.Sprintf("0x%X", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

func isPrintable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}
	for _, c := range string(b) {
		if c < 0x20 && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
		if c == 0x7f {
			return false
		}
	}
	return true
}
