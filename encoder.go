/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * IPP message encoder
 */

package ippctl

import (
	"bytes"
	"math"
)

// encodeRequest serializes a request into IPP wire format.
//
// Wire format:
//
//	2 bytes:  Version
//	2 bytes:  Operation code
//	4 bytes:  RequestID
//	variable: attribute groups
//	1 byte:   TagEnd
func encodeRequest(rq *Request) ([]byte, error) {
	var buf bytes.Buffer

	encodeU16(&buf, uint16(rq.Version))
	encodeU16(&buf, uint16(rq.Op))
	encodeU32(&buf, rq.RequestID)

	groups := []Group{{TagOperationGroup, rq.Operation}}
	if rq.Job != nil {
		groups = append(groups, Group{TagJobGroup, rq.Job})
	}

	for _, grp := range groups {
		buf.WriteByte(byte(grp.Tag))

		for _, attr := range grp.Attrs {
			err := encodeAttr(&buf, attr)
			if err != nil {
				return nil, err
			}
		}
	}

	buf.WriteByte(byte(TagEnd))

	return buf.Bytes(), nil
}

// encodeAttr serializes a single attribute as one or more
// tag / name-length+name / value-length+value triples.
//
// The first triple carries the attribute name; each additional value
// is emitted with a zero-length name, which the receiver interprets
// as "additional value for the previous attribute".
func encodeAttr(buf *bytes.Buffer, attr Attribute) error {
	if attr.Name == "" {
		return &EncodingError{Tag: attr.Tag, Reason: "attribute without name"}
	}

	if len(attr.Values) == 0 {
		return &EncodingError{Attr: attr.Name, Tag: attr.Tag,
			Reason: "attribute without value"}
	}

	if len(attr.Name) > math.MaxUint16 {
		return &EncodingError{Attr: attr.Name, Tag: attr.Tag,
			Reason: "attribute name too long"}
	}

	name := attr.Name
	for _, val := range attr.Values {
		err := checkTagValue(attr.Name, attr.Tag, val)
		if err != nil {
			return err
		}

		data, err := val.encode()
		if err != nil {
			return &EncodingError{Attr: attr.Name, Tag: attr.Tag,
				Reason: err.Error()}
		}

		if len(data) > math.MaxUint16 {
			return &EncodingError{Attr: attr.Name, Tag: attr.Tag,
				Reason: "attribute value too long"}
		}

		buf.WriteByte(byte(attr.Tag))
		encodeU16(buf, uint16(len(name)))
		buf.WriteString(name)
		encodeU16(buf, uint16(len(data)))
		buf.Write(data)

		name = "" // Each additional value comes without name
	}

	return nil
}

// checkTagValue verifies that the value's type matches the declared
// tag. A mismatch is a programming error on the caller's side and is
// rejected, never coerced.
func checkTagValue(name string, tag Tag, val Value) error {
	if tag.IsDelimiter() {
		return &EncodingError{Attr: name, Tag: tag,
			Reason: "delimiter tag cannot carry a value"}
	}

	tagType := tag.Type()
	if tagType != val.Type() {
		return &EncodingError{Attr: name, Tag: tag,
			Reason: tagType.String() + " value required, " +
				val.Type().String() + " present"}
	}

	return nil
}

// encodeU16 appends a big-endian 16-bit integer
func encodeU16(buf *bytes.Buffer, v uint16) {
	buf.Write([]byte{byte(v >> 8), byte(v)})
}

// encodeU32 appends a big-endian 32-bit integer
func encodeU32(buf *bytes.Buffer, v uint32) {
	buf.Write([]byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
}
