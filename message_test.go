/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Request builder tests, cross-validated against goipp
 */

package ippctl

import (
	"testing"

	"github.com/OpenPrinting/goipp"
)

// testClient returns a client bound to a fixed endpoint, for tests
// that only build requests and never touch the network
func testClient() *Client {
	return NewClient(Connection{
		Host:     "printer.local",
		Port:     631,
		BasePath: "/ipp/print",
	})
}

// TestBuildCatalogue tests that every catalogued operation builds a
// request whose operation attributes carry exactly the declared
// target and extra attributes, in the declared order. The byte
// sequence is decoded back with goipp, the independently developed
// codec, to prove wire-level interoperability.
func TestBuildCatalogue(t *testing.T) {
	const jobID = 42

	printerURI := "ipp://printer.local:631/ipp/print"
	jobURI := "ipp://printer.local:631/ipp/print/42"

	type opAttr struct {
		name, value string
	}

	testData := []struct {
		name  string
		op    goipp.Op
		attrs []opAttr
	}{
		{
			name: "Pause-Printer",
			op:   goipp.OpPausePrinter,
			attrs: []opAttr{
				{"attributes-charset", "utf-8"},
				{"attributes-natural-language", "en"},
				{"printer-uri", printerURI},
				{"requesting-user-name", "ippctl"},
			},
		},
		{
			name: "Resume-Printer",
			op:   goipp.OpResumePrinter,
			attrs: []opAttr{
				{"attributes-charset", "utf-8"},
				{"attributes-natural-language", "en"},
				{"printer-uri", printerURI},
				{"requesting-user-name", "ippctl"},
			},
		},
		{
			name: "Purge-Jobs",
			op:   goipp.OpPurgeJobs,
			attrs: []opAttr{
				{"attributes-charset", "utf-8"},
				{"attributes-natural-language", "en"},
				{"printer-uri", printerURI},
				{"requesting-user-name", "ippctl"},
			},
		},
		{
			name: "Hold-Job",
			op:   goipp.OpHoldJob,
			attrs: []opAttr{
				{"attributes-charset", "utf-8"},
				{"attributes-natural-language", "en"},
				{"job-uri", jobURI},
				{"job-id", "42"},
				{"requesting-user-name", "ippctl"},
				{"job-hold-until", "indefinite"},
			},
		},
		{
			name: "Release-Job",
			op:   goipp.OpReleaseJob,
			attrs: []opAttr{
				{"attributes-charset", "utf-8"},
				{"attributes-natural-language", "en"},
				{"job-uri", jobURI},
				{"job-id", "42"},
				{"requesting-user-name", "ippctl"},
			},
		},
		{
			name: "Cancel-Job",
			op:   goipp.OpCancelJob,
			attrs: []opAttr{
				{"attributes-charset", "utf-8"},
				{"attributes-natural-language", "en"},
				{"job-uri", jobURI},
				{"job-id", "42"},
				{"requesting-user-name", "ippctl"},
			},
		},
	}

	for _, data := range testData {
		c := testClient()

		info := operations[data.name]
		id := 0
		if info.needsJob {
			id = jobID
		}

		rq := c.newRequest(info.op, id, info.extra)
		wire, err := rq.EncodeBytes()
		if err != nil {
			t.Errorf("%s: encode: %s", data.name, err)
			continue
		}

		var msg goipp.Message
		err = msg.DecodeBytes(wire)
		if err != nil {
			t.Errorf("%s: goipp decode: %s", data.name, err)
			continue
		}

		if goipp.Op(msg.Code) != data.op {
			t.Errorf("%s: operation code: expected %s, got %s",
				data.name, data.op, goipp.Op(msg.Code))
		}

		if msg.Version != goipp.MakeVersion(2, 0) {
			t.Errorf("%s: version: expected 2.0, got %s",
				data.name, msg.Version)
		}

		if msg.RequestID != rq.RequestID {
			t.Errorf("%s: request-id: expected %d, got %d",
				data.name, rq.RequestID, msg.RequestID)
		}

		if len(msg.Operation) != len(data.attrs) {
			t.Errorf("%s: expected %d operation attributes, got %d",
				data.name, len(data.attrs), len(msg.Operation))
			continue
		}

		for i, want := range data.attrs {
			attr := msg.Operation[i]
			if attr.Name != want.name {
				t.Errorf("%s: attribute %d: expected %q, got %q",
					data.name, i, want.name, attr.Name)
				continue
			}

			got := attr.Values[0].V.String()
			if got != want.value {
				t.Errorf("%s: %s: expected %q, got %q",
					data.name, want.name, want.value, got)
			}
		}
	}
}

// TestGoippResponseInterop tests that responses produced by goipp, the
// independently developed codec, decode into the expected structures
func TestGoippResponseInterop(t *testing.T) {
	msg := goipp.NewResponse(goipp.MakeVersion(2, 0), goipp.StatusOk, 7)
	msg.Operation.Add(goipp.MakeAttribute("attributes-charset",
		goipp.TagCharset, goipp.String("utf-8")))
	msg.Operation.Add(goipp.MakeAttribute("attributes-natural-language",
		goipp.TagLanguage, goipp.String("en")))
	msg.Operation.Add(goipp.MakeAttribute("status-message",
		goipp.TagText, goipp.String("all good")))
	msg.Printer.Add(goipp.MakeAttribute("printer-state",
		goipp.TagEnum, goipp.Integer(4)))
	msg.Printer.Add(goipp.MakeAttr("printer-state-reasons",
		goipp.TagKeyword,
		goipp.String("media-low-warning"),
		goipp.String("toner-low-report")))
	msg.Printer.Add(goipp.MakeAttribute("color-supported",
		goipp.TagBoolean, goipp.Boolean(true)))

	wire, err := msg.EncodeBytes()
	if err != nil {
		t.Fatalf("goipp encode: %s", err)
	}

	var rsp Response
	err = rsp.DecodeBytes(wire)
	if err != nil {
		t.Fatalf("decode: %s", err)
	}

	if rsp.Version != MakeVersion(2, 0) {
		t.Errorf("version: expected 2.0, got %s", rsp.Version)
	}

	if rsp.Status != StatusOk {
		t.Errorf("status: expected successful-ok, got %s", rsp.Status)
	}

	if rsp.RequestID != 7 {
		t.Errorf("request-id: expected 7, got %d", rsp.RequestID)
	}

	if rsp.StatusMessage() != "all good" {
		t.Errorf("status-message: expected %q, got %q",
			"all good", rsp.StatusMessage())
	}

	prn := rsp.Group(TagPrinterGroup)
	if prn == nil {
		t.Fatalf("printer group missing")
	}

	expected := Attributes{
		MakeAttribute("printer-state", TagEnum, Integer(4)),
		MakeAttributeList("printer-state-reasons", TagKeyword,
			String("media-low-warning"), String("toner-low-report")),
		MakeAttribute("color-supported", TagBoolean, Boolean(true)),
	}

	if !prn.Attrs.Equal(expected) {
		t.Errorf("printer attributes: expected %v, got %v",
			expected, prn.Attrs)
	}
}

// TestRequestIDWrap tests that the request-id counter stays within
// the 31-bit range and never issues 0
func TestRequestIDWrap(t *testing.T) {
	c := testClient()

	c.requestID = 0x7ffffffe
	testData := []uint32{0x7fffffff, 1, 2}

	for _, expected := range testData {
		id := c.nextRequestID()
		if id != expected {
			t.Errorf("nextRequestID: expected %d, got %d", expected, id)
		}
	}
}
