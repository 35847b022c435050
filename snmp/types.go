package snmp

import (
	"fmt"

	"github.com/gosnmp/gosnmp"
)

// Kind is the semantic classification of a polled value. It drives how the
// submission layer emits the value, which is not the same thing as its
// wire type: classification is a closed lookup over declared type names,
// never a structural check. The codec's wire-compatibility relationships do
// not track SNMP semantics (a CounterBasedGauge64 is wire-compatible with
// Counter64 but is a gauge).
type Kind int

const (
	KindOther Kind = iota
	KindCounter
	KindGauge
	KindOpaque
	KindOID
	KindNoSuchInstance
	KindNoSuchObject
	KindEndOfMibView
)

func (k Kind) String() string {
	switch k {
	case KindCounter:
		return "counter"
	case KindGauge:
		return "gauge"
	case KindOpaque:
		return "opaque"
	case KindOID:
		return "oid"
	case KindNoSuchInstance:
		return "no-such-instance"
	case KindNoSuchObject:
		return "no-such-object"
	case KindEndOfMibView:
		return "end-of-mib-view"
	default:
		return "other"
	}
}

// IsSentinel returns true for the protocol-level absence markers.
func (k Kind) IsSentinel() bool {
	return k == KindNoSuchInstance || k == KindNoSuchObject || k == KindEndOfMibView
}

// Sentinel type names, also used verbatim as display strings.
const (
	TypeNoSuchInstance = "NoSuchInstance"
	TypeNoSuchObject   = "NoSuchObject"
	TypeEndOfMibView   = "EndOfMibView"
)

// Value type names we explicitly support.
var counterTypes = map[string]bool{
	"Counter32": true,
	"Counter64": true,
	// Not part of the base SNMP protocol (see RFC 2856).
	"ZeroBasedCounter64": true,
}

var gaugeTypes = map[string]bool{
	"Gauge32":    true,
	"Integer":    true,
	"Integer32":  true,
	"Unsigned32": true,
	// Not part of the base SNMP protocol (see RFC 2856).
	"CounterBasedGauge64": true,
}

var opaqueTypes = map[string]bool{
	"Opaque": true,
	// Already-unwrapped opaque floats, as the codec reports them.
	"OpaqueFloat":  true,
	"OpaqueDouble": true,
}

var oidTypes = map[string]bool{
	"ObjectIdentifier": true,
	"ObjectIdentity":   true,
	"ObjectName":       true,
}

func classifyTypeName(name string) Kind {
	switch {
	case counterTypes[name]:
		return KindCounter
	case gaugeTypes[name]:
		return KindGauge
	case opaqueTypes[name]:
		return KindOpaque
	case oidTypes[name]:
		return KindOID
	}
	switch name {
	case TypeNoSuchInstance:
		return KindNoSuchInstance
	case TypeNoSuchObject:
		return KindNoSuchObject
	case TypeEndOfMibView:
		return KindEndOfMibView
	}
	return KindOther
}

// TypeName returns the canonical name for a codec type tag. The names line
// up with the classification sets above so a varbind can flow straight
// from the codec into NewValue.
func TypeName(t gosnmp.Asn1BER) string {
	switch t {
	case gosnmp.Boolean:
		return "Boolean"
	case gosnmp.Integer:
		return "Integer"
	case gosnmp.BitString:
		return "BitString"
	case gosnmp.OctetString:
		return "OctetString"
	case gosnmp.Null:
		return "Null"
	case gosnmp.ObjectIdentifier:
		return "ObjectIdentifier"
	case gosnmp.ObjectDescription:
		return "ObjectDescription"
	case gosnmp.IPAddress:
		return "IpAddress"
	case gosnmp.Counter32:
		return "Counter32"
	case gosnmp.Gauge32:
		return "Gauge32"
	case gosnmp.TimeTicks:
		return "TimeTicks"
	case gosnmp.Opaque:
		return "Opaque"
	case gosnmp.NsapAddress:
		return "NsapAddress"
	case gosnmp.Counter64:
		return "Counter64"
	case gosnmp.Uinteger32:
		return "Unsigned32"
	case gosnmp.OpaqueFloat:
		return "OpaqueFloat"
	case gosnmp.OpaqueDouble:
		return "OpaqueDouble"
	case gosnmp.NoSuchObject:
		return TypeNoSuchObject
	case gosnmp.NoSuchInstance:
		return TypeNoSuchInstance
	case gosnmp.EndOfMibView:
		return TypeEndOfMibView
	default:
		return fmt.Sprintf("Unknown(0x%02X)", uint8(t))
	}
}
