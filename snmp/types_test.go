package snmp

import (
	"testing"

	"github.com/gosnmp/gosnmp"
)

func TestTypeName(t *testing.T) {
	tests := []struct {
		tag  gosnmp.Asn1BER
		want string
	}{
		{gosnmp.Integer, "Integer"},
		{gosnmp.OctetString, "OctetString"},
		{gosnmp.ObjectIdentifier, "ObjectIdentifier"},
		{gosnmp.IPAddress, "IpAddress"},
		{gosnmp.Counter32, "Counter32"},
		{gosnmp.Gauge32, "Gauge32"},
		{gosnmp.TimeTicks, "TimeTicks"},
		{gosnmp.Opaque, "Opaque"},
		{gosnmp.Counter64, "Counter64"},
		{gosnmp.Uinteger32, "Unsigned32"},
		{gosnmp.OpaqueFloat, "OpaqueFloat"},
		{gosnmp.OpaqueDouble, "OpaqueDouble"},
		{gosnmp.NoSuchObject, "NoSuchObject"},
		{gosnmp.NoSuchInstance, "NoSuchInstance"},
		{gosnmp.EndOfMibView, "EndOfMibView"},
		{gosnmp.Asn1BER(0xff), "Unknown(0xFF)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := TypeName(tt.tag); got != tt.want {
				t.Errorf("TypeName(0x%02X) = %q, want %q", uint8(tt.tag), got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCounter, "counter"},
		{KindGauge, "gauge"},
		{KindOpaque, "opaque"},
		{KindOID, "oid"},
		{KindNoSuchInstance, "no-such-instance"},
		{KindNoSuchObject, "no-such-object"},
		{KindEndOfMibView, "end-of-mib-view"},
		{KindOther, "other"},
		{Kind(99), "other"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
