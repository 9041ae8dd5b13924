/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * IPP status codes
 */

package ippctl

import (
	"fmt"
)

// Status represents an IPP status code
type Status uint16

// Status codes this client cares to name. Any 16-bit value may arrive
// from a device; interpretation goes by band, not by individual code.
const (
	StatusOk                     Status = 0x0000 // successful-ok
	StatusOkIgnoredOrSubstituted Status = 0x0001 // successful-ok-ignored-or-substituted-attributes
	StatusOkConflicting          Status = 0x0002 // successful-ok-conflicting-attributes

	StatusErrorBadRequest       Status = 0x0400 // client-error-bad-request
	StatusErrorForbidden        Status = 0x0401 // client-error-forbidden
	StatusErrorNotAuthenticated Status = 0x0402 // client-error-not-authenticated
	StatusErrorNotAuthorized    Status = 0x0403 // client-error-not-authorized
	StatusErrorNotPossible      Status = 0x0404 // client-error-not-possible
	StatusErrorTimeout          Status = 0x0405 // client-error-timeout
	StatusErrorNotFound         Status = 0x0406 // client-error-not-found
	StatusErrorGone             Status = 0x0407 // client-error-gone

	StatusErrorInternal              Status = 0x0500 // server-error-internal-error
	StatusErrorOperationNotSupported Status = 0x0501 // server-error-operation-not-supported
	StatusErrorServiceUnavailable    Status = 0x0502 // server-error-service-unavailable
	StatusErrorVersionNotSupported   Status = 0x0503 // server-error-version-not-supported
	StatusErrorDevice                Status = 0x0504 // server-error-device-error
	StatusErrorTemporary             Status = 0x0505 // server-error-temporary-error
	StatusErrorNotAcceptingJobs      Status = 0x0506 // server-error-not-accepting-jobs
	StatusErrorBusy                  Status = 0x0507 // server-error-busy
)

// IsSuccess returns true for statuses in the success band (0x0000-0x00ff)
func (status Status) IsSuccess() bool {
	return status <= 0x00ff
}

// IsClientError returns true for statuses in the client error band
// (0x0400-0x04ff). These indicate a problem with the request and are
// not worth retrying unchanged.
func (status Status) IsClientError() bool {
	return status >= 0x0400 && status <= 0x04ff
}

// IsServerError returns true for statuses in the server error band
// (0x0500-0x05ff). These are device-internal and possibly transient.
func (status Status) IsServerError() bool {
	return status >= 0x0500 && status <= 0x05ff
}

// String returns a status name, as defined by RFC 8011
func (status Status) String() string {
	if s := statusNames[status]; s != "" {
		return s
	}

	return fmt.Sprintf("0x%4.4x", uint(status))
}

var statusNames = map[Status]string{
	StatusOk:                     "successful-ok",
	StatusOkIgnoredOrSubstituted: "successful-ok-ignored-or-substituted-attributes",
	StatusOkConflicting:          "successful-ok-conflicting-attributes",

	StatusErrorBadRequest:       "client-error-bad-request",
	StatusErrorForbidden:        "client-error-forbidden",
	StatusErrorNotAuthenticated: "client-error-not-authenticated",
	StatusErrorNotAuthorized:    "client-error-not-authorized",
	StatusErrorNotPossible:      "client-error-not-possible",
	StatusErrorTimeout:          "client-error-timeout",
	StatusErrorNotFound:         "client-error-not-found",
	StatusErrorGone:             "client-error-gone",

	StatusErrorInternal:              "server-error-internal-error",
	StatusErrorOperationNotSupported: "server-error-operation-not-supported",
	StatusErrorServiceUnavailable:    "server-error-service-unavailable",
	StatusErrorVersionNotSupported:   "server-error-version-not-supported",
	StatusErrorDevice:                "server-error-device-error",
	StatusErrorTemporary:             "server-error-temporary-error",
	StatusErrorNotAcceptingJobs:      "server-error-not-accepting-jobs",
	StatusErrorBusy:                  "server-error-busy",
}
