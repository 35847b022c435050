package snmp

import "fmt"

// Variable is an SNMP variable: an OID associated to a value. Both fields
// come from the same response element; the pairing is the constructing
// layer's responsibility and no further state is carried.
type Variable struct {
	OID   *OID
	Value *Value
}

// NewVariable pairs an identifier with its polled value.
func NewVariable(oid *OID, value *Value) Variable {
	return Variable{OID: oid, Value: value}
}

func (va Variable) String() string {
	return fmt.Sprintf("(%s, %s)", va.OID, va.Value)
}
