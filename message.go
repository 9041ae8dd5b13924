/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * IPP protocol messages
 */

package ippctl

import (
	"fmt"
)

// Version represents a protocol version: major and minor codes packed
// into a single 16-bit word
type Version uint16

// DefaultVersion is the IPP version this client speaks (2.0)
const DefaultVersion Version = 0x0200

// MakeVersion makes a Version from major and minor parts
func MakeVersion(major, minor uint8) Version {
	return Version(major)<<8 | Version(minor)
}

// Major returns the major part of the version
func (v Version) Major() uint8 {
	return uint8(v >> 8)
}

// Minor returns the minor part of the version
func (v Version) Minor() uint8 {
	return uint8(v)
}

// String converts the version to a string (i.e., "2.0")
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Request represents a single IPP request message.
//
// The operation attributes group always starts with attributes-charset
// and attributes-natural-language, followed by the target attributes;
// the request builder maintains that order. The job attributes group
// is optional and unused by the catalogued control operations.
type Request struct {
	Version   Version    // Protocol version
	Op        Op         // Operation code
	RequestID uint32     // Echoed back by the device
	Operation Attributes // Operation attributes group
	Job       Attributes // Optional job attributes group
}

// EncodeBytes serializes the request into IPP wire format
func (rq *Request) EncodeBytes() ([]byte, error) {
	return encodeRequest(rq)
}

// Response represents a decoded IPP response message
type Response struct {
	Version   Version // Protocol version
	Status    Status  // Status code
	RequestID uint32  // Echo of the request's request-id
	Groups    []Group // Attribute groups, in wire order
}

// DecodeBytes parses an IPP response from raw bytes
func (rsp *Response) DecodeBytes(data []byte) error {
	return decodeResponse(rsp, data)
}

// Group returns the first group with the given delimiter tag, or nil
func (rsp *Response) Group(tag Tag) *Group {
	for i := range rsp.Groups {
		if rsp.Groups[i].Tag == tag {
			return &rsp.Groups[i]
		}
	}

	return nil
}

// GroupsByTag returns all groups with the given delimiter tag,
// preserving wire order. Get-Jobs responses carry one job group
// per returned job.
func (rsp *Response) GroupsByTag(tag Tag) []Group {
	var groups []Group
	for _, grp := range rsp.Groups {
		if grp.Tag == tag {
			groups = append(groups, grp)
		}
	}

	return groups
}

// StatusMessage returns the status-message text from the operation
// attributes group, or "" if the device didn't send one
func (rsp *Response) StatusMessage() string {
	grp := rsp.Group(TagOperationGroup)
	if grp == nil {
		return ""
	}

	attr := grp.Attrs.Get("status-message")
	if attr == nil || len(attr.Values) == 0 {
		return ""
	}

	if s, ok := attr.Values[0].(String); ok {
		return string(s)
	}

	return ""
}

// UnsupportedAttributes returns the names of attributes the device
// rejected, collected from all unsupported-attributes groups
func (rsp *Response) UnsupportedAttributes() []string {
	var names []string
	for _, grp := range rsp.GroupsByTag(TagUnsupportedGroup) {
		for _, attr := range grp.Attrs {
			names = append(names, attr.Name)
		}
	}

	return names
}
