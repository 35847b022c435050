// Package ber decodes the secondary ASN.1 payload carried by SNMP Opaque
// values. An Opaque octet string encodes one inner BER value; agents that
// expose floating-point data use the net-snmp "opaque special types"
// encoding, where the payload is a nested Opaque TLV wrapping a
// context-class float or double.
package ber

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Tags seen inside Opaque payloads.
const (
	tagInteger     = 0x02
	tagOctetString = 0x04
	tagCounter32   = 0x41
	tagGauge32     = 0x42
	tagTimeTicks   = 0x43
	tagOpaque      = 0x44
	tagCounter64   = 0x46

	// Context class, high-tag-number form. The second tag byte selects
	// the special type.
	highTagPrefix = 0x9f
	tagFloat      = 0x78
	tagDouble     = 0x79
)

var errTruncated = errors.New("truncated BER value")

// DecodeOpaque decodes the inner value of an Opaque payload. It returns
// one of int64, uint64, float64 or string. Unknown tags and truncated
// payloads are errors; nothing is guessed.
func DecodeOpaque(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, errors.New("empty opaque payload")
	}

	if data[0] == tagOpaque {
		inner, err := contentAt(data, 1)
		if err != nil {
			return nil, err
		}
		return DecodeOpaque(inner)
	}

	if data[0] == highTagPrefix {
		if len(data) < 2 {
			return nil, errTruncated
		}
		inner, err := contentAt(data, 2)
		if err != nil {
			return nil, err
		}
		switch data[1] {
		case tagFloat:
			if len(inner) != 4 {
				return nil, fmt.Errorf("opaque float has %d content bytes, want 4", len(inner))
			}
			return float64(math.Float32frombits(binary.BigEndian.Uint32(inner))), nil
		case tagDouble:
			if len(inner) != 8 {
				return nil, fmt.Errorf("opaque double has %d content bytes, want 8", len(inner))
			}
			return math.Float64frombits(binary.BigEndian.Uint64(inner)), nil
		}
		return nil, fmt.Errorf("unsupported opaque special tag 0x%02x%02x", data[0], data[1])
	}

	inner, err := contentAt(data, 1)
	if err != nil {
		return nil, err
	}
	switch data[0] {
	case tagInteger:
		return decodeSigned(inner)
	case tagCounter32, tagGauge32, tagTimeTicks, tagCounter64:
		return decodeUnsigned(inner)
	case tagOctetString:
		return string(inner), nil
	}
	return nil, fmt.Errorf("unsupported tag 0x%02x in opaque payload", data[0])
}

// contentAt parses the BER length starting at offset and returns the
// content bytes. Trailing bytes after the value are ignored.
func contentAt(data []byte, offset int) ([]byte, error) {
	if offset >= len(data) {
		return nil, errTruncated
	}
	first := data[offset]
	offset++

	var length int
	if first < 0x80 {
		length = int(first)
	} else {
		n := int(first & 0x7f)
		if n == 0 || n > 4 {
			return nil, fmt.Errorf("unsupported BER length form 0x%02x", first)
		}
		if offset+n > len(data) {
			return nil, errTruncated
		}
		for _, b := range data[offset : offset+n] {
			length = length<<8 | int(b)
		}
		offset += n
	}
	if offset+length > len(data) {
		return nil, errTruncated
	}
	return data[offset : offset+length], nil
}

func decodeSigned(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, errors.New("empty INTEGER content")
	}
	if len(b) > 8 {
		return 0, fmt.Errorf("INTEGER content of %d bytes overflows int64", len(b))
	}
	v := int64(int8(b[0])) // sign-extend from the first byte
	for _, c := range b[1:] {
		v = v<<8 | int64(c)
	}
	return v, nil
}

func decodeUnsigned(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, errors.New("empty unsigned content")
	}
	// A 9-byte encoding is legal when the first byte is a zero pad.
	if len(b) == 9 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) > 8 {
		return 0, fmt.Errorf("unsigned content of %d bytes overflows uint64", len(b))
	}
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}
	return v, nil
}
