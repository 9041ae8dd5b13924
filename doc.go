/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Package documentation
 */

// Package ippctl implements a minimal IPP (RFC 8011) client for printer
// and job control over HTTP.
//
// The package speaks the binary IPP wire protocol directly and covers the
// administrative operations that general-purpose printing libraries tend
// to leave out: Pause-Printer, Resume-Printer, Purge-Jobs, Hold-Job,
// Release-Job and Cancel-Job. In addition it can fetch a compact printer
// status snapshot (Get-Printer-Attributes) and the job queue (Get-Jobs),
// so a caller can refresh state after a control operation.
//
// Typical usage:
//
//	client := ippctl.NewClient(ippctl.Connection{
//	        Host: "printer.local",
//	        Port: 631,
//	        BasePath: "/ipp/print",
//	})
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	outcome, err := client.PausePrinter(ctx)
//
// Every operation is a single HTTP POST with Content-Type application/ipp.
// The client performs exactly one attempt per call; retry policy belongs
// to the caller. Timeouts and cancellation are controlled through the
// context passed to each operation.
//
// Errors are typed: EncodingError, ParseError, TransportError,
// ProtocolMismatchError, UnsupportedOperationError and DeviceStatusError,
// so callers can distinguish a network failure from a device that
// answered with an IPP error status.
package ippctl
