// Package snmpdata models SNMP identifiers and values for metric pipelines.
//
// The package normalizes the heterogeneous representations a decoding
// layer produces into a stable model the polling and submission layers can
// share. An OID may arrive as numeric arcs, a dotted string, or a codec
// resolution handle; identifier resolution is lazy, value classification
// is a closed lookup over declared type names, and a Variable pairs the
// two.
//
// The model lives in the snmp subpackage; this package re-exports it.
package snmpdata

import (
	"github.com/AmariRules/integrations-core/snmp"
	"github.com/gosnmp/gosnmp"
)

// Type aliases for public API - all types come from the snmp subpackage.

// Oid is a sequence of arc values representing an SNMP Object Identifier.
type Oid = snmp.Oid

// OID is a lazy facade over the raw forms an object identifier arrives in.
type OID = snmp.OID

// ObjectIdentity is a resolution handle carrying a MIB symbol, arcs, or both.
type ObjectIdentity = snmp.ObjectIdentity

// ObjectType pairs an identity with an optional value payload.
type ObjectType = snmp.ObjectType

// Value wraps one decoded SNMP value.
type Value = snmp.Value

// Variable is an OID associated to a value.
type Variable = snmp.Variable

// Kind is the semantic classification of a polled value.
type Kind = snmp.Kind

// OidTrie indexes a set of OIDs for prefix lookups.
type OidTrie = snmp.OidTrie

// Kind constants.
const (
	KindOther          = snmp.KindOther
	KindCounter        = snmp.KindCounter
	KindGauge          = snmp.KindGauge
	KindOpaque         = snmp.KindOpaque
	KindOID            = snmp.KindOID
	KindNoSuchInstance = snmp.KindNoSuchInstance
	KindNoSuchObject   = snmp.KindNoSuchObject
	KindEndOfMibView   = snmp.KindEndOfMibView
)

// Error kinds.
var (
	ErrMalformedIdentifier  = snmp.ErrMalformedIdentifier
	ErrUnsupportedOperation = snmp.ErrUnsupportedOperation
	ErrNotNumeric           = snmp.ErrNotNumeric
)

// ParseOID parses an OID from a dotted string.
func ParseOID(s string) (Oid, error) { return snmp.ParseOID(s) }

// NewOID wraps a raw identifier representation without decoding it.
func NewOID(value any) *OID { return snmp.NewOID(value) }

// NewValue wraps a value tagged with its declared type name.
func NewValue(typeName string, v any) *Value { return snmp.NewValue(typeName, v) }

// NewVariable pairs an identifier with its polled value.
func NewVariable(oid *OID, value *Value) Variable { return snmp.NewVariable(oid, value) }

// FromPDU converts one polled varbind into a Variable.
func FromPDU(pdu gosnmp.SnmpPDU) Variable { return snmp.FromPDU(pdu) }

// TypeName returns the canonical name for a codec type tag.
func TypeName(t gosnmp.Asn1BER) string { return snmp.TypeName(t) }
