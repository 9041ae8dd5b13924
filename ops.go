/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Operation catalogue
 */

package ippctl

import (
	"context"
)

// opInfo describes the shape of one catalogued operation: its code,
// whether it targets a job rather than the printer, and any extra
// operation attributes it carries.
type opInfo struct {
	op       Op         // Operation code
	needsJob bool       // Targets job-uri + job-id instead of printer-uri
	extra    Attributes // Extra operation attributes
}

// operations is the closed catalogue of control operations. Adding an
// operation is a source change, not a runtime registration.
var operations = map[string]opInfo{
	"Pause-Printer":  {op: OpPausePrinter},
	"Resume-Printer": {op: OpResumePrinter},
	"Purge-Jobs":     {op: OpPurgeJobs},
	"Hold-Job": {
		op:       OpHoldJob,
		needsJob: true,
		extra: Attributes{
			MakeAttribute("job-hold-until",
				TagKeyword, String("indefinite")),
		},
	},
	"Release-Job": {op: OpReleaseJob, needsJob: true},
	"Cancel-Job":  {op: OpCancelJob, needsJob: true},
}

// Do performs the named catalogued operation. jobID is required for
// job-targeted operations and must be 0 for printer-targeted ones.
//
// On success the returned error is nil. If the device answered with a
// non-success IPP status, the Outcome is still returned alongside a
// *DeviceStatusError describing the failure.
func (c *Client) Do(ctx context.Context, name string, jobID int) (*Outcome, error) {
	info, ok := operations[name]
	if !ok {
		return nil, &UnsupportedOperationError{Name: name}
	}

	if info.needsJob && jobID <= 0 {
		return nil, &EncodingError{Attr: "job-id", Tag: TagInteger,
			Reason: "operation " + name + " requires a positive job id"}
	}

	if !info.needsJob {
		jobID = 0
	}

	rq := c.newRequest(info.op, jobID, info.extra)

	rsp, err := c.do(ctx, rq)
	if err != nil {
		return nil, err
	}

	return interpret(name, rsp)
}

// PausePrinter stops the printer processing jobs
func (c *Client) PausePrinter(ctx context.Context) (*Outcome, error) {
	return c.Do(ctx, "Pause-Printer", 0)
}

// ResumePrinter resumes a paused printer
func (c *Client) ResumePrinter(ctx context.Context) (*Outcome, error) {
	return c.Do(ctx, "Resume-Printer", 0)
}

// PurgeJobs removes all jobs from the printer's queue
func (c *Client) PurgeJobs(ctx context.Context) (*Outcome, error) {
	return c.Do(ctx, "Purge-Jobs", 0)
}

// HoldJob holds the given job indefinitely
func (c *Client) HoldJob(ctx context.Context, jobID int) (*Outcome, error) {
	return c.Do(ctx, "Hold-Job", jobID)
}

// ReleaseJob releases a previously held job
func (c *Client) ReleaseJob(ctx context.Context, jobID int) (*Outcome, error) {
	return c.Do(ctx, "Release-Job", jobID)
}

// CancelJob cancels the given job
func (c *Client) CancelJob(ctx context.Context, jobID int) (*Outcome, error) {
	return c.Do(ctx, "Cancel-Job", jobID)
}

// Operations returns the names of the catalogued operations.
// The catalogue is a closed set; the returned slice is a copy.
func Operations() []string {
	names := make([]string, 0, len(operations))
	for name := range operations {
		names = append(names, name)
	}

	return names
}
