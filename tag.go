/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * IPP tags
 */

package ippctl

import (
	"fmt"
)

// Tag represents a single-byte tag used in the binary representation
// of an IPP message. Values below 0x10 are delimiter tags that open
// attribute groups or terminate the attribute section; the rest are
// value tags that determine the wire type of an attribute value.
type Tag byte

// Tag values
const (
	// Delimiter tags
	TagZero             Tag = 0x00 // Never valid on the wire
	TagOperationGroup   Tag = 0x01 // Operation attributes group
	TagJobGroup         Tag = 0x02 // Job attributes group
	TagEnd              Tag = 0x03 // End-of-attributes
	TagPrinterGroup     Tag = 0x04 // Printer attributes group
	TagUnsupportedGroup Tag = 0x05 // Unsupported attributes group

	// Out-of-band value tags
	TagUnsupportedValue Tag = 0x10 // Unsupported value
	TagUnknown          Tag = 0x12 // Unknown value
	TagNoValue          Tag = 0x13 // No-value value

	// Value tags
	TagInteger  Tag = 0x21 // Integer value
	TagBoolean  Tag = 0x22 // Boolean value
	TagEnum     Tag = 0x23 // Enumeration value
	TagText     Tag = 0x41 // Text-without-language value
	TagName     Tag = 0x42 // Name-without-language value
	TagKeyword  Tag = 0x44 // Keyword value
	TagURI      Tag = 0x45 // URI value
	TagCharset  Tag = 0x47 // Character set value
	TagLanguage Tag = 0x48 // Natural language value
)

// IsDelimiter returns true for delimiter tags
func (tag Tag) IsDelimiter() bool {
	return tag < 0x10
}

// IsGroup returns true for tags that open an attribute group
func (tag Tag) IsGroup() bool {
	return tag.IsDelimiter() && tag != TagZero && tag != TagEnd
}

// Type returns the Type of Value that corresponds to the tag
func (tag Tag) Type() Type {
	if tag.IsDelimiter() {
		return TypeInvalid
	}

	switch tag {
	case TagInteger, TagEnum:
		return TypeInteger

	case TagBoolean:
		return TypeBoolean

	case TagText, TagName, TagKeyword, TagURI, TagCharset, TagLanguage:
		return TypeString

	case TagUnsupportedValue, TagUnknown, TagNoValue:
		// Out-of-band tags carry no value
		return TypeVoid

	default:
		// Syntactically valid value tag this client has no use for.
		// The value octets are carried through opaquely.
		return TypeBinary
	}
}

// String returns a tag name, as defined by RFC 8010
func (tag Tag) String() string {
	if int(tag) < len(tagNames) {
		if s := tagNames[tag]; s != "" {
			return s
		}
	}

	return fmt.Sprintf("0x%2.2x", uint(tag))
}

var tagNames = [...]string{
	TagOperationGroup:   "operation-attributes-tag",
	TagJobGroup:         "job-attributes-tag",
	TagEnd:              "end-of-attributes-tag",
	TagPrinterGroup:     "printer-attributes-tag",
	TagUnsupportedGroup: "unsupported-attributes-tag",

	TagUnsupportedValue: "unsupported",
	TagUnknown:          "unknown",
	TagNoValue:          "no-value",
	TagInteger:          "integer",
	TagBoolean:          "boolean",
	TagEnum:             "enum",
	TagText:             "textWithoutLanguage",
	TagName:             "nameWithoutLanguage",
	TagKeyword:          "keyword",
	TagURI:              "uri",
	TagCharset:          "charset",
	TagLanguage:         "naturalLanguage",
}

// Type represents the kind of Go value that backs an attribute value
type Type int

// Type values
const (
	TypeInvalid Type = iota // Delimiter tags, no value
	TypeInteger             // Integer and Enum
	TypeBoolean             // Boolean
	TypeString              // All text-like tags
	TypeVoid                // Out-of-band tags
	TypeBinary              // Opaque octets
)

// String returns a Type name, for diagnostics
func (t Type) String() string {
	switch t {
	case TypeInvalid:
		return "Invalid"
	case TypeInteger:
		return "Integer"
	case TypeBoolean:
		return "Boolean"
	case TypeString:
		return "String"
	case TypeVoid:
		return "Void"
	case TypeBinary:
		return "Binary"
	}

	return fmt.Sprintf("Unknown(%d)", int(t))
}
