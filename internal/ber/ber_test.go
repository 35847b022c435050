package ber

import (
	"testing"
)

func TestDecodeOpaqueFloat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want float64
	}{
		{"float", []byte{0x9f, 0x78, 0x04, 0x42, 0xf6, 0x00, 0x00}, 123.0},
		{"float negative", []byte{0x9f, 0x78, 0x04, 0xc2, 0x28, 0x00, 0x00}, -42.0},
		{"double", []byte{0x9f, 0x79, 0x08, 0x40, 0x5e, 0xc0, 0x00, 0x00, 0x00, 0x00, 0x00}, 123.0},
		{"nested opaque", []byte{0x44, 0x07, 0x9f, 0x78, 0x04, 0x42, 0xf6, 0x00, 0x00}, 123.0},
		{"doubly nested opaque", []byte{0x44, 0x09, 0x44, 0x07, 0x9f, 0x78, 0x04, 0x42, 0xf6, 0x00, 0x00}, 123.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOpaque(tt.data)
			if err != nil {
				t.Fatalf("DecodeOpaque() unexpected error: %v", err)
			}
			f, ok := got.(float64)
			if !ok {
				t.Fatalf("DecodeOpaque() = %T, want float64", got)
			}
			if f != tt.want {
				t.Errorf("DecodeOpaque() = %v, want %v", f, tt.want)
			}
		})
	}
}

func TestDecodeOpaqueInteger(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want int64
	}{
		{"small", []byte{0x02, 0x01, 0x2a}, 42},
		{"zero", []byte{0x02, 0x01, 0x00}, 0},
		{"negative", []byte{0x02, 0x01, 0xfe}, -2},
		{"two bytes", []byte{0x02, 0x02, 0x01, 0x00}, 256},
		{"negative two bytes", []byte{0x02, 0x02, 0xff, 0x00}, -256},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOpaque(tt.data)
			if err != nil {
				t.Fatalf("DecodeOpaque() unexpected error: %v", err)
			}
			n, ok := got.(int64)
			if !ok {
				t.Fatalf("DecodeOpaque() = %T, want int64", got)
			}
			if n != tt.want {
				t.Errorf("DecodeOpaque() = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestDecodeOpaqueUnsigned(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint64
	}{
		{"counter32", []byte{0x41, 0x01, 0x2a}, 42},
		{"gauge32", []byte{0x42, 0x02, 0x01, 0x00}, 256},
		{"counter64 high bit", []byte{0x46, 0x09, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0xffffffffffffffff},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOpaque(tt.data)
			if err != nil {
				t.Fatalf("DecodeOpaque() unexpected error: %v", err)
			}
			n, ok := got.(uint64)
			if !ok {
				t.Fatalf("DecodeOpaque() = %T, want uint64", got)
			}
			if n != tt.want {
				t.Errorf("DecodeOpaque() = %d, want %d", n, tt.want)
			}
		})
	}
}

func TestDecodeOpaqueString(t *testing.T) {
	got, err := DecodeOpaque([]byte{0x04, 0x03, 'a', 'b', 'c'})
	if err != nil {
		t.Fatalf("DecodeOpaque() unexpected error: %v", err)
	}
	if s, ok := got.(string); !ok || s != "abc" {
		t.Errorf("DecodeOpaque() = %v (%T), want \"abc\"", got, got)
	}
}

func TestDecodeOpaqueLongFormLength(t *testing.T) {
	data := append([]byte{0x04, 0x81, 0x80}, make([]byte, 128)...)
	got, err := DecodeOpaque(data)
	if err != nil {
		t.Fatalf("DecodeOpaque() unexpected error: %v", err)
	}
	s, ok := got.(string)
	if !ok || len(s) != 128 {
		t.Errorf("DecodeOpaque() = %T of length %d, want 128-byte string", got, len(s))
	}
}

func TestDecodeOpaqueErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unknown tag", []byte{0x30, 0x01, 0x00}},
		{"unknown special tag", []byte{0x9f, 0x7a, 0x01, 0x00}},
		{"truncated content", []byte{0x02, 0x04, 0x01}},
		{"truncated length", []byte{0x02}},
		{"float wrong size", []byte{0x9f, 0x78, 0x02, 0x00, 0x00}},
		{"double wrong size", []byte{0x9f, 0x79, 0x04, 0x00, 0x00, 0x00, 0x00}},
		{"integer too wide", []byte{0x02, 0x09, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{"empty integer", []byte{0x02, 0x00}},
		{"bare special prefix", []byte{0x9f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, err := DecodeOpaque(tt.data); err == nil {
				t.Errorf("DecodeOpaque(% x) = %v, want error", tt.data, got)
			}
		})
	}
}
