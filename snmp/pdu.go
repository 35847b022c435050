package snmp

import "github.com/gosnmp/gosnmp"

// FromPDU converts one polled varbind into a Variable. The identifier
// wraps the PDU name without decoding it; the value is tagged with the
// canonical name of the PDU's type. This is the intake point for
// responses fetched with gosnmp.
func FromPDU(pdu gosnmp.SnmpPDU) Variable {
	return Variable{
		OID:   NewOID(pdu.Name),
		Value: ValueFromPDU(pdu),
	}
}

// ValueFromPDU wraps just the value part of a varbind. The codec reports
// ObjectIdentifier payloads as dotted strings; NewValue rewraps them as
// identifier-kind values.
func ValueFromPDU(pdu gosnmp.SnmpPDU) *Value {
	return NewValue(TypeName(pdu.Type), pdu.Value)
}
