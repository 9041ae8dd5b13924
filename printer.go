/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Printer status snapshot
 */

package ippctl

import (
	"context"
	"fmt"
)

// PrinterState represents the printer-state enum, RFC 8011 5.4.11
type PrinterState int

// Printer states
const (
	PrinterIdle       PrinterState = 3 // Ready for new jobs
	PrinterProcessing PrinterState = 4 // Printing
	PrinterStopped    PrinterState = 5 // Stopped, needs attention
)

// String returns the state keyword
func (s PrinterState) String() string {
	switch s {
	case PrinterIdle:
		return "idle"
	case PrinterProcessing:
		return "processing"
	case PrinterStopped:
		return "stopped"
	}

	return fmt.Sprintf("unknown(%d)", int(s))
}

// Marker describes one consumable: a toner cartridge, ink tank,
// waste container and so on. Level is a percentage, or -1 when the
// device didn't report one.
type Marker struct {
	Name      string // Human-readable supply name
	Type      string // "toner", "ink", "waste-toner", ...
	Color     string // "#RRGGBB" or color keyword, may be ""
	Level     int    // Current level, 0-100, or -1
	LowLevel  int    // Warning threshold, or -1
	HighLevel int    // Full threshold, or -1
}

// Printer is a compact status snapshot of the device
type Printer struct {
	Name         string       // printer-name
	Info         string       // printer-info
	MakeAndModel string       // printer-make-and-model
	Location     string       // printer-location
	URISupported []string     // printer-uri-supported
	State        PrinterState // printer-state
	StateMessage string       // printer-state-message
	StateReasons []string     // printer-state-reasons
	QueuedJobs   int          // queued-job-count, or -1
	Markers      []Marker     // Consumable levels, in device order
}

// statusAttributes is the fixed set requested from the device. Kept
// deliberately small; this client doesn't negotiate attribute support.
var statusAttributes = []Value{
	String("printer-name"),
	String("printer-info"),
	String("printer-make-and-model"),
	String("printer-location"),
	String("printer-uri-supported"),
	String("printer-state"),
	String("printer-state-message"),
	String("printer-state-reasons"),
	String("queued-job-count"),
	String("marker-names"),
	String("marker-types"),
	String("marker-colors"),
	String("marker-levels"),
	String("marker-low-levels"),
	String("marker-high-levels"),
}

// PrinterAttributes queries the device with Get-Printer-Attributes and
// decodes the response into a Printer snapshot. Nothing is cached;
// every call re-queries the device.
func (c *Client) PrinterAttributes(ctx context.Context) (*Printer, error) {
	rq := c.newRequest(OpGetPrinterAttributes, 0, Attributes{
		MakeAttributeList("requested-attributes",
			TagKeyword, statusAttributes...),
	})

	rsp, err := c.do(ctx, rq)
	if err != nil {
		return nil, err
	}

	if !rsp.Status.IsSuccess() {
		return nil, &DeviceStatusError{
			Op:      OpGetPrinterAttributes.String(),
			Status:  rsp.Status,
			Message: rsp.StatusMessage(),
		}
	}

	attrs := newAttrsMap(rsp.Group(TagPrinterGroup))
	return attrs.decodePrinter(), nil
}

// attrsMap enrolls a group's attributes into a map for convenient
// access. In a case of duplicated attributes, first occurrence wins.
type attrsMap map[string]*Attribute

// newAttrsMap creates an attrsMap from a group, which may be nil
func newAttrsMap(grp *Group) attrsMap {
	attrs := make(attrsMap)
	if grp == nil {
		return attrs
	}

	for i := len(grp.Attrs) - 1; i >= 0; i-- {
		attrs[grp.Attrs[i].Name] = &grp.Attrs[i]
	}

	return attrs
}

// decodePrinter builds the Printer snapshot from decoded attributes
func (attrs attrsMap) decodePrinter() *Printer {
	p := &Printer{
		Name:         attrs.str("printer-name"),
		Info:         attrs.str("printer-info"),
		MakeAndModel: attrs.str("printer-make-and-model"),
		Location:     attrs.str("printer-location"),
		URISupported: attrs.strList("printer-uri-supported"),
		State:        PrinterState(attrs.intOr("printer-state", 0)),
		StateMessage: attrs.str("printer-state-message"),
		StateReasons: attrs.strList("printer-state-reasons"),
		QueuedJobs:   attrs.intOr("queued-job-count", -1),
	}

	// Marker attributes come as parallel lists, one entry per supply
	names := attrs.strList("marker-names")
	types := attrs.strList("marker-types")
	colors := attrs.strList("marker-colors")
	levels := attrs.intList("marker-levels")
	low := attrs.intList("marker-low-levels")
	high := attrs.intList("marker-high-levels")

	for i := range names {
		m := Marker{
			Name:      names[i],
			Level:     -1,
			LowLevel:  -1,
			HighLevel: -1,
		}

		if i < len(types) {
			m.Type = types[i]
		}
		if i < len(colors) {
			m.Color = colors[i]
		}
		if i < len(levels) {
			m.Level = levels[i]
		}
		if i < len(low) {
			m.LowLevel = low[i]
		}
		if i < len(high) {
			m.HighLevel = high[i]
		}

		p.Markers = append(p.Markers, m)
	}

	return p
}

// str returns a single-string attribute, or ""
func (attrs attrsMap) str(name string) string {
	strs := attrs.strList(name)
	if len(strs) == 0 {
		return ""
	}

	return strs[0]
}

// strList returns all string values of an attribute
func (attrs attrsMap) strList(name string) []string {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}

	var strs []string
	for _, v := range attr.Values {
		if s, ok := v.(String); ok {
			strs = append(strs, string(s))
		}
	}

	return strs
}

// intOr returns a single-integer attribute, or the fallback
func (attrs attrsMap) intOr(name string, fallback int) int {
	ints := attrs.intList(name)
	if len(ints) == 0 {
		return fallback
	}

	return ints[0]
}

// intList returns all integer values of an attribute
func (attrs attrsMap) intList(name string) []int {
	attr, ok := attrs[name]
	if !ok {
		return nil
	}

	var ints []int
	for _, v := range attr.Values {
		if i, ok := v.(Integer); ok {
			ints = append(ints, int(i))
		}
	}

	return ints
}
