/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Error taxonomy
 */

package ippctl

import (
	"fmt"
)

// EncodingError is returned when a request cannot be serialized,
// typically because an attribute value does not match its declared
// tag. It indicates a caller bug, not a condition worth retrying.
type EncodingError struct {
	Attr   string // Attribute name
	Tag    Tag    // Declared value tag
	Reason string // What went wrong
}

// Error returns the error message
func (e *EncodingError) Error() string {
	return fmt.Sprintf("ipp: cannot encode %q (%s): %s",
		e.Attr, e.Tag, e.Reason)
}

// ParseError is returned when response bytes cannot be decoded as an
// IPP message. The parser never skips past malformed input; a device
// that produced one malformed response is likely to do it again, so
// the error is surfaced immediately.
type ParseError struct {
	Offset int    // Byte offset of the failure
	Reason string // What went wrong
}

// Error returns the error message
func (e *ParseError) Error() string {
	return fmt.Sprintf("ipp: malformed response at 0x%x: %s",
		e.Offset, e.Reason)
}

// TransportError is returned when the HTTP exchange itself fails:
// connection refused, timeout, TLS handshake failure, or a non-2xx
// HTTP status. Retry policy is the caller's decision.
type TransportError struct {
	Op  string // Operation name
	URL string // Endpoint URL
	Err error  // Underlying cause, if any
}

// Error returns the error message
func (e *TransportError) Error() string {
	return fmt.Sprintf("ipp: %s %s: %s", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying cause, so that callers can use
// errors.Is to distinguish context.Canceled from DeadlineExceeded
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolMismatchError is returned when the response's request-id
// does not echo the request's. The response is discarded.
type ProtocolMismatchError struct {
	Op       string // Operation name
	Sent     uint32 // Request-id of the request
	Received uint32 // Request-id found in the response
}

// Error returns the error message
func (e *ProtocolMismatchError) Error() string {
	return fmt.Sprintf("ipp: %s: response request-id %d does not match request %d",
		e.Op, e.Received, e.Sent)
}

// UnsupportedOperationError is returned by Do for an operation name
// outside the closed catalogue
type UnsupportedOperationError struct {
	Name string // The unknown operation name
}

// Error returns the error message
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("ipp: unsupported operation %q", e.Name)
}

// DeviceStatusError is returned when the device answered with a
// non-success IPP status. Server-error statuses are plausibly
// transient; client-error statuses are not.
type DeviceStatusError struct {
	Op      string // Operation name
	Status  Status // IPP status code
	Message string // status-message text, if the device sent one
}

// Error returns the error message
func (e *DeviceStatusError) Error() string {
	s := fmt.Sprintf("ipp: %s: %s", e.Op, e.Status)
	if e.Message != "" {
		s += " (" + e.Message + ")"
	}
	return s
}

// Transient reports whether the failure is plausibly transient,
// i.e. the status is in the server-error band
func (e *DeviceStatusError) Transient() bool {
	return e.Status.IsServerError()
}
