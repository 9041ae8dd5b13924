/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Message attributes
 */

package ippctl

import (
	"strings"
)

// Attribute represents a single named attribute with one or more values.
//
// Tag is the value tag of the first value. On the wire, the second and
// subsequent values are emitted as "additional value" triples carrying
// a zero-length name, per RFC 8011 multi-valued attribute encoding.
// It is legal, if unusual, for a device to switch tags between the
// values of one attribute; the decoded Values preserve each value as
// its own tag dictated, while Tag keeps the first one.
type Attribute struct {
	Name   string  // Attribute name
	Tag    Tag     // Value tag of the first value
	Values []Value // One or more values
}

// MakeAttribute makes an Attribute with a single value
func MakeAttribute(name string, tag Tag, value Value) Attribute {
	return Attribute{Name: name, Tag: tag, Values: []Value{value}}
}

// MakeAttributeList makes a multi-valued Attribute
func MakeAttributeList(name string, tag Tag, values ...Value) Attribute {
	return Attribute{Name: name, Tag: tag, Values: values}
}

// Equal checks that two attributes are equal: same name, same tag and
// pairwise equal values
func (a Attribute) Equal(a2 Attribute) bool {
	if a.Name != a2.Name || a.Tag != a2.Tag ||
		len(a.Values) != len(a2.Values) {
		return false
	}

	for i := range a.Values {
		if !valueEqual(a.Values[i], a2.Values[i]) {
			return false
		}
	}

	return true
}

// String formats the attribute for diagnostics, as name=value or
// name=[v1,v2,...] for multi-valued attributes
func (a Attribute) String() string {
	if len(a.Values) == 1 {
		return a.Name + "=" + a.Values[0].String()
	}

	strs := make([]string, len(a.Values))
	for i, v := range a.Values {
		strs[i] = v.String()
	}

	return a.Name + "=[" + strings.Join(strs, ",") + "]"
}

// valueEqual checks that two values are equal
func valueEqual(v1, v2 Value) bool {
	if v1.Type() != v2.Type() {
		return false
	}

	if v1.Type() == TypeBinary {
		b1, b2 := v1.(Binary), v2.(Binary)
		if len(b1) != len(b2) {
			return false
		}
		for i := range b1 {
			if b1[i] != b2[i] {
				return false
			}
		}
		return true
	}

	return v1 == v2
}

// Attributes represents an ordered sequence of attributes
type Attributes []Attribute

// Add appends an Attribute to Attributes
func (attrs *Attributes) Add(attr Attribute) {
	*attrs = append(*attrs, attr)
}

// Get returns the first attribute with the given name, or nil
func (attrs Attributes) Get(name string) *Attribute {
	for i := range attrs {
		if attrs[i].Name == name {
			return &attrs[i]
		}
	}

	return nil
}

// Equal checks that two attribute sequences are equal, in order
func (attrs Attributes) Equal(attrs2 Attributes) bool {
	if len(attrs) != len(attrs2) {
		return false
	}

	for i := range attrs {
		if !attrs[i].Equal(attrs2[i]) {
			return false
		}
	}

	return true
}

// Group represents a single attribute group: the delimiter tag that
// opened it and the attributes that followed. A response may contain
// several groups with the same tag (Get-Jobs returns one job group
// per job), so groups are kept as an ordered sequence, not a map.
type Group struct {
	Tag   Tag        // Group delimiter tag
	Attrs Attributes // Attributes of the group
}
