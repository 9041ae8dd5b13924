/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * IPP message decoder
 */

package ippctl

import (
	"encoding/binary"
	"fmt"
)

// messageDecoder walks a response byte buffer. off always points at
// the next unconsumed byte, so ParseError offsets are exact.
type messageDecoder struct {
	data []byte // Raw response bytes
	off  int    // Current offset
}

// decodeResponse parses an IPP response message.
//
// Wire format:
//
//	2 bytes:  Version
//	2 bytes:  Status code
//	4 bytes:  RequestID
//	variable: attribute groups
//	1 byte:   TagEnd
//
// Group delimiter tags open a new group; value tags start an attribute
// triple. A triple with a zero-length name is an additional value for
// the immediately preceding attribute. Parsing is strict: truncated
// input, a zero tag, or an additional value with no preceding attribute
// all yield a ParseError, and nothing past the error is consumed.
// Bytes following TagEnd are ignored; some devices pad the body.
func decodeResponse(rsp *Response, data []byte) error {
	md := messageDecoder{data: data}

	v, err := md.decodeU16()
	if err != nil {
		return err
	}
	rsp.Version = Version(v)

	s, err := md.decodeU16()
	if err != nil {
		return err
	}
	rsp.Status = Status(s)

	rsp.RequestID, err = md.decodeU32()
	if err != nil {
		return err
	}

	rsp.Groups = nil

	var group *Group
	var prev *Attribute

	for {
		tagOff := md.off
		tag, err := md.decodeTag()
		if err != nil {
			return err
		}

		if tag == TagEnd {
			return nil
		}

		if tag == TagZero {
			return &ParseError{Offset: tagOff, Reason: "invalid tag 0"}
		}

		if tag.IsGroup() {
			rsp.Groups = append(rsp.Groups, Group{Tag: tag})
			group = &rsp.Groups[len(rsp.Groups)-1]
			prev = nil
			continue
		}

		// Value tag: decode one attribute triple
		name, err := md.decodeString()
		if err != nil {
			return err
		}

		valOff := md.off
		raw, err := md.decodeBytes()
		if err != nil {
			return err
		}

		val, err := valueForTag(tag).decode(raw)
		if err != nil {
			return &ParseError{Offset: valOff,
				Reason: fmt.Sprintf("%s: %s", tag, err)}
		}

		switch {
		case name == "":
			// Additional value for the previous attribute
			if prev == nil {
				return &ParseError{Offset: tagOff,
					Reason: "additional value without preceding attribute"}
			}
			prev.Values = append(prev.Values, val)

		case group == nil:
			return &ParseError{Offset: tagOff,
				Reason: "attribute before any group delimiter"}

		default:
			group.Attrs.Add(Attribute{Name: name, Tag: tag,
				Values: []Value{val}})
			prev = &group.Attrs[len(group.Attrs)-1]
		}
	}
}

// decodeTag reads a single tag byte
func (md *messageDecoder) decodeTag() (Tag, error) {
	if md.off >= len(md.data) {
		return 0, md.truncated("tag")
	}

	tag := Tag(md.data[md.off])
	md.off++

	return tag, nil
}

// decodeU16 reads a big-endian 16-bit integer
func (md *messageDecoder) decodeU16() (uint16, error) {
	if md.off+2 > len(md.data) {
		return 0, md.truncated("16-bit word")
	}

	v := binary.BigEndian.Uint16(md.data[md.off:])
	md.off += 2

	return v, nil
}

// decodeU32 reads a big-endian 32-bit integer
func (md *messageDecoder) decodeU32() (uint32, error) {
	if md.off+4 > len(md.data) {
		return 0, md.truncated("32-bit word")
	}

	v := binary.BigEndian.Uint32(md.data[md.off:])
	md.off += 4

	return v, nil
}

// decodeBytes reads a 16-bit length prefix followed by that many bytes
func (md *messageDecoder) decodeBytes() ([]byte, error) {
	length, err := md.decodeU16()
	if err != nil {
		return nil, err
	}

	if md.off+int(length) > len(md.data) {
		return nil, md.truncated("length-prefixed field")
	}

	data := md.data[md.off : md.off+int(length)]
	md.off += int(length)

	return data, nil
}

// decodeString reads a length-prefixed string
func (md *messageDecoder) decodeString() (string, error) {
	data, err := md.decodeBytes()
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// truncated makes a ParseError for input that ended too early
func (md *messageDecoder) truncated(what string) error {
	return &ParseError{Offset: md.off,
		Reason: "message truncated reading " + what}
}
