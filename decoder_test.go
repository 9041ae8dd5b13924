/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Response parser tests
 */

package ippctl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// rawMessage incrementally builds a wire-format message for tests
type rawMessage struct {
	buf bytes.Buffer
}

// header appends the 8-byte message header
func (r *rawMessage) header(v Version, code, id uint32) *rawMessage {
	binary.Write(&r.buf, binary.BigEndian, uint16(v))
	binary.Write(&r.buf, binary.BigEndian, uint16(code))
	binary.Write(&r.buf, binary.BigEndian, id)
	return r
}

// tag appends a bare delimiter tag
func (r *rawMessage) tag(t Tag) *rawMessage {
	r.buf.WriteByte(byte(t))
	return r
}

// attr appends a complete attribute triple
func (r *rawMessage) attr(t Tag, name, value string) *rawMessage {
	r.buf.WriteByte(byte(t))
	binary.Write(&r.buf, binary.BigEndian, uint16(len(name)))
	r.buf.WriteString(name)
	binary.Write(&r.buf, binary.BigEndian, uint16(len(value)))
	r.buf.WriteString(value)
	return r
}

// bytes returns the accumulated wire bytes
func (r *rawMessage) bytes() []byte {
	return r.buf.Bytes()
}

// TestDecodeErrors tests that malformed messages are rejected with
// ParseError
func TestDecodeErrors(t *testing.T) {
	testData := []struct {
		name string
		data []byte
	}{
		{
			name: "truncated header",
			data: []byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name: "missing end-of-attributes",
			data: new(rawMessage).
				header(DefaultVersion, 0, 1).
				tag(TagOperationGroup).
				attr(TagCharset, "attributes-charset", "utf-8").
				bytes(),
		},
		{
			name: "truncated value",
			data: new(rawMessage).
				header(DefaultVersion, 0, 1).
				tag(TagOperationGroup).
				attr(TagCharset, "attributes-charset", "utf-8").
				bytes()[:20],
		},
		{
			name: "zero tag",
			data: new(rawMessage).
				header(DefaultVersion, 0, 1).
				tag(TagOperationGroup).
				tag(TagZero).
				bytes(),
		},
		{
			name: "attribute before any group",
			data: new(rawMessage).
				header(DefaultVersion, 0, 1).
				attr(TagCharset, "attributes-charset", "utf-8").
				bytes(),
		},
		{
			name: "additional value without attribute",
			data: new(rawMessage).
				header(DefaultVersion, 0, 1).
				tag(TagOperationGroup).
				attr(TagKeyword, "", "none").
				bytes(),
		},
		{
			name: "additional value after group delimiter",
			data: new(rawMessage).
				header(DefaultVersion, 0, 1).
				tag(TagOperationGroup).
				attr(TagKeyword, "which-jobs", "completed").
				tag(TagPrinterGroup).
				attr(TagKeyword, "", "not-completed").
				bytes(),
		},
		{
			name: "value length past end of message",
			data: append(new(rawMessage).
				header(DefaultVersion, 0, 1).
				tag(TagOperationGroup).
				bytes(),
				byte(TagInteger), 0x00, 0x06, 'j', 'o', 'b', '-',
				'i', 'd', 0x00, 0x04, 0x00),
		},
	}

	for _, data := range testData {
		var rsp Response
		err := rsp.DecodeBytes(data.data)
		if err == nil {
			t.Errorf("%s: error expected but didn't occur", data.name)
			continue
		}

		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("%s: expected ParseError, got %T (%s)",
				data.name, err, err)
		}
	}
}

// TestDecodeGroups tests group handling, multi-valued attributes and
// repeated group tags
func TestDecodeGroups(t *testing.T) {
	data := new(rawMessage).
		header(DefaultVersion, uint32(StatusOk), 3).
		tag(TagOperationGroup).
		attr(TagCharset, "attributes-charset", "utf-8").
		tag(TagJobGroup).
		attr(TagName, "job-name", "report.pdf").
		attr(TagKeyword, "job-state-reasons", "none").
		attr(TagKeyword, "", "job-printing").
		tag(TagJobGroup).
		attr(TagName, "job-name", "photo.jpg").
		tag(TagEnd).
		bytes()

	// trailing bytes after end-of-attributes are ignored
	data = append(data, 0xde, 0xad)

	var rsp Response
	err := rsp.DecodeBytes(data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	if len(rsp.Groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(rsp.Groups))
	}

	jobs := rsp.GroupsByTag(TagJobGroup)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 job groups, got %d", len(jobs))
	}

	expected := Attributes{
		MakeAttribute("job-name", TagName, String("report.pdf")),
		MakeAttributeList("job-state-reasons", TagKeyword,
			String("none"), String("job-printing")),
	}

	if !jobs[0].Attrs.Equal(expected) {
		t.Errorf("first job group: expected %v, got %v",
			expected, jobs[0].Attrs)
	}

	second := jobs[1].Attrs.Get("job-name")
	if second == nil || second.Values[0].String() != "photo.jpg" {
		t.Errorf("second job group: job-name: got %v", second)
	}
}

// TestDecodeUnknownValueTag tests that a syntactically valid value
// with an uninterpreted tag is carried as opaque binary data
func TestDecodeUnknownValueTag(t *testing.T) {
	data := new(rawMessage).
		header(DefaultVersion, uint32(StatusOk), 4).
		tag(TagPrinterGroup).
		attr(Tag(0x31), "media-col-default", "\x00\x01\x02").
		tag(TagEnd).
		bytes()

	var rsp Response
	err := rsp.DecodeBytes(data)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	attr := rsp.Groups[0].Attrs.Get("media-col-default")
	if attr == nil {
		t.Fatalf("media-col-default missing")
	}

	bin, ok := attr.Values[0].(Binary)
	if !ok {
		t.Fatalf("expected Binary value, got %T", attr.Values[0])
	}

	if !bytes.Equal(bin, []byte{0x00, 0x01, 0x02}) {
		t.Errorf("unexpected binary value: %x", []byte(bin))
	}
}
