/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Status interpretation
 */

package ippctl

// Outcome is the structured result of one control operation. It is
// created once per call and not mutated afterwards.
type Outcome struct {
	Op          string   // Operation name
	Success     bool     // Status was in the success band
	Status      Status   // Raw IPP status code
	Message     string   // status-message text, if any
	Unsupported []string // Attributes the device rejected, if any
}

// interpret maps a decoded response onto an Outcome.
//
// Success-band statuses yield a nil error; successful-ok-ignored-or-
// substituted-attributes additionally reports which attributes the
// device rejected. Client-error and server-error bands, and any status
// outside the defined bands, yield the Outcome plus a DeviceStatusError
// so the caller can decide about retrying. This layer never retries.
func interpret(opName string, rsp *Response) (*Outcome, error) {
	outcome := &Outcome{
		Op:      opName,
		Status:  rsp.Status,
		Message: rsp.StatusMessage(),
	}

	if rsp.Status.IsSuccess() {
		outcome.Success = true
		if rsp.Status == StatusOkIgnoredOrSubstituted {
			outcome.Unsupported = rsp.UnsupportedAttributes()
		}
		return outcome, nil
	}

	return outcome, &DeviceStatusError{
		Op:      opName,
		Status:  rsp.Status,
		Message: outcome.Message,
	}
}
