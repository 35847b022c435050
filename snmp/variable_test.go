package snmp

import "testing"

func TestVariableString(t *testing.T) {
	tests := []struct {
		name     string
		variable Variable
		want     string
	}{
		{
			"counter",
			NewVariable(NewOID("1.3.6.1.2.1.2.2.1.10.1"), NewValue("Counter32", uint(42))),
			"(1.3.6.1.2.1.2.2.1.10.1, 42)",
		},
		{
			"sentinel",
			NewVariable(NewOID(Oid{1, 3, 6, 1}), NewValue("NoSuchObject", nil)),
			"(1.3.6.1, NoSuchObject)",
		},
		{
			"oid value",
			NewVariable(NewOID("1.3.6.1.2.1.1.2.0"), NewValue("ObjectIdentifier", "1.3.6.1.4.1.8072")),
			"(1.3.6.1.2.1.1.2.0, 1.3.6.1.4.1.8072)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.variable.String(); got != tt.want {
				t.Errorf("Variable.String() = %q, want %q", got, tt.want)
			}
		})
	}
}
