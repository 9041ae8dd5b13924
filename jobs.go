/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Job queue listing
 */

package ippctl

import (
	"context"
	"fmt"
)

// JobState represents the job-state enum, RFC 8011 5.3.7
type JobState int

// Job states
const (
	JobPending           JobState = 3 // Queued, waiting
	JobHeld              JobState = 4 // Held, not eligible to print
	JobProcessing        JobState = 5 // Printing
	JobProcessingStopped JobState = 6 // Printing stopped
	JobCanceled          JobState = 7 // Canceled
	JobAborted           JobState = 8 // Aborted by the device
	JobCompleted         JobState = 9 // Done
)

// String returns the state keyword
func (s JobState) String() string {
	switch s {
	case JobPending:
		return "pending"
	case JobHeld:
		return "pending-held"
	case JobProcessing:
		return "processing"
	case JobProcessingStopped:
		return "processing-stopped"
	case JobCanceled:
		return "canceled"
	case JobAborted:
		return "aborted"
	case JobCompleted:
		return "completed"
	}

	return fmt.Sprintf("unknown(%d)", int(s))
}

// Job describes one queued job
type Job struct {
	ID    int      // job-id
	Name  string   // job-name
	State JobState // job-state
	User  string   // job-originating-user-name
}

// Jobs queries the device with Get-Jobs and returns the queue. The
// device answers with one job-attributes group per job; the order of
// the returned slice is the device's order.
func (c *Client) Jobs(ctx context.Context) ([]Job, error) {
	rq := c.newRequest(OpGetJobs, 0, Attributes{
		MakeAttributeList("requested-attributes", TagKeyword,
			String("job-id"),
			String("job-name"),
			String("job-state"),
			String("job-originating-user-name")),
	})

	rsp, err := c.do(ctx, rq)
	if err != nil {
		return nil, err
	}

	if !rsp.Status.IsSuccess() {
		return nil, &DeviceStatusError{
			Op:      OpGetJobs.String(),
			Status:  rsp.Status,
			Message: rsp.StatusMessage(),
		}
	}

	var jobs []Job
	for _, grp := range rsp.GroupsByTag(TagJobGroup) {
		grp := grp
		attrs := newAttrsMap(&grp)

		id := attrs.intOr("job-id", 0)
		if id == 0 {
			// A job group without a job-id is an empty
			// placeholder some devices send for an empty queue
			continue
		}

		jobs = append(jobs, Job{
			ID:    id,
			Name:  attrs.str("job-name"),
			State: JobState(attrs.intOr("job-state", 0)),
			User:  attrs.str("job-originating-user-name"),
		})
	}

	return jobs, nil
}
