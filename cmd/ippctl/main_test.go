/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Command tests against a fake IPP printer
 */

package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/OpenPrinting/goipp"
	"github.com/ippctl/ippctl"
)

// fakePrinter serves minimal IPP responses over httptest. Every
// request is answered with the given status after the given delay,
// echoing the request id and reporting an idle printer.
func fakePrinter(t *testing.T, delay time.Duration,
	status goipp.Status) *httptest.Server {

	return httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			var rq goipp.Message
			err := rq.Decode(r.Body)
			if err != nil {
				t.Errorf("fake printer: decode: %s", err)
				w.WriteHeader(http.StatusBadRequest)
				return
			}

			time.Sleep(delay)

			rsp := goipp.NewResponse(goipp.MakeVersion(2, 0),
				status, rq.RequestID)
			rsp.Printer.Add(goipp.MakeAttribute("printer-state",
				goipp.TagEnum, goipp.Integer(3)))

			w.Header().Set("Content-Type", ippctl.ContentType)
			err = rsp.Encode(w)
			if err != nil {
				t.Errorf("fake printer: encode: %s", err)
			}
		}))
}

// fakeClient returns a Client pointed at the fake printer
func fakeClient(t *testing.T, srv *httptest.Server) *ippctl.Client {
	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("url.Parse: %s", err)
	}

	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("strconv.Atoi: %s", err)
	}

	return ippctl.NewClient(ippctl.Connection{
		Host:     u.Hostname(),
		Port:     port,
		BasePath: "/ipp/print",
	})
}

// TestRunOperationError tests that a device error is returned to the
// caller for a single report and not also logged on the way out
func TestRunOperationError(t *testing.T) {
	saved := Conf
	defer func() { Conf = saved }()

	srv := fakePrinter(t, 0, goipp.StatusErrorNotPossible)
	defer srv.Close()

	Conf.Timeout = 5 * time.Second
	c := fakeClient(t, srv)

	var buf bytes.Buffer
	Log.out = &buf
	defer func() { Log.out = os.Stderr }()

	err := runOperation(c, "Pause-Printer", 0)

	var devErr *ippctl.DeviceStatusError
	if !errors.As(err, &devErr) {
		t.Fatalf("expected DeviceStatusError, got %T (%s)", err, err)
	}

	if buf.Len() != 0 {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}
