/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Attribute values
 */

package ippctl

import (
	"encoding/binary"
	"fmt"
)

// Value represents a single attribute value.
//
// IPP values are typed, and the type of each value is determined by the
// attribute's tag. The Value implementations here cover the types this
// client needs: Integer (integer and enum tags), Boolean, String (all
// text-like tags), Void (out-of-band tags) and Binary (opaque carriage
// of value tags outside this client's scope).
type Value interface {
	String() string
	Type() Type
	encode() ([]byte, error)
	decode(data []byte) (Value, error)
}

// Integer is the Value that represents a 32-bit signed integer.
//
// Use with: TagInteger, TagEnum
type Integer int32

// String converts Integer value to string
func (v Integer) String() string { return fmt.Sprintf("%d", int32(v)) }

// Type returns type of Value (TypeInteger for Integer)
func (Integer) Type() Type { return TypeInteger }

// Encode Integer Value into wire format
func (v Integer) encode() ([]byte, error) {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}, nil
}

// Decode Integer Value from wire format
func (Integer) decode(data []byte) (Value, error) {
	if len(data) != 4 {
		return nil, fmt.Errorf("integer value must be 4 bytes, got %d", len(data))
	}

	return Integer(binary.BigEndian.Uint32(data)), nil
}

// Boolean is the Value that contains true or false.
//
// Use with: TagBoolean
type Boolean bool

// String converts Boolean value to string
func (v Boolean) String() string { return fmt.Sprintf("%t", bool(v)) }

// Type returns type of Value (TypeBoolean for Boolean)
func (Boolean) Type() Type { return TypeBoolean }

// Encode Boolean Value into wire format
func (v Boolean) encode() ([]byte, error) {
	if v {
		return []byte{1}, nil
	}
	return []byte{0}, nil
}

// Decode Boolean Value from wire format
func (Boolean) decode(data []byte) (Value, error) {
	if len(data) != 1 {
		return nil, fmt.Errorf("boolean value must be 1 byte, got %d", len(data))
	}

	return Boolean(data[0] != 0), nil
}

// String is the Value that represents a string of text. Text is carried
// as raw UTF-8 bytes, length-prefixed on the wire, without conversion.
//
// Use with: TagText, TagName, TagKeyword, TagURI, TagCharset, TagLanguage
type String string

// String converts String value to string
func (v String) String() string { return string(v) }

// Type returns type of Value (TypeString for String)
func (String) Type() Type { return TypeString }

// Encode String Value into wire format
func (v String) encode() ([]byte, error) {
	return []byte(v), nil
}

// Decode String Value from wire format
func (String) decode(data []byte) (Value, error) {
	return String(data), nil
}

// Void is the Value that represents "no value".
//
// Use with: TagUnsupportedValue, TagUnknown, TagNoValue
type Void struct{}

// String converts Void value to string
func (Void) String() string { return "" }

// Type returns type of Value (TypeVoid for Void)
func (Void) Type() Type { return TypeVoid }

// Encode Void Value into wire format
func (Void) encode() ([]byte, error) {
	return []byte{}, nil
}

// Decode Void Value from wire format
func (Void) decode([]byte) (Value, error) {
	return Void{}, nil
}

// Binary is the Value that carries raw octets of a value whose tag is
// outside the set this client interprets. It is never produced by the
// request builder; it only appears when decoding device responses.
type Binary []byte

// String converts Binary value to string
func (v Binary) String() string { return fmt.Sprintf("%x", []byte(v)) }

// Type returns type of Value (TypeBinary for Binary)
func (Binary) Type() Type { return TypeBinary }

// Encode Binary Value into wire format
func (v Binary) encode() ([]byte, error) {
	return []byte(v), nil
}

// Decode Binary Value from wire format
func (Binary) decode(data []byte) (Value, error) {
	return Binary(data), nil
}

// valueForTag returns the zero Value used to decode values of the tag
func valueForTag(tag Tag) Value {
	switch tag.Type() {
	case TypeInteger:
		return Integer(0)
	case TypeBoolean:
		return Boolean(false)
	case TypeString:
		return String("")
	case TypeVoid:
		return Void{}
	default:
		return Binary(nil)
	}
}
