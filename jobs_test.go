/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Job queue listing tests
 */

package ippctl

import (
	"context"
	"reflect"
	"testing"

	"github.com/OpenPrinting/goipp"
)

// TestJobs tests decoding a Get-Jobs response with several job groups
func TestJobs(t *testing.T) {
	dev := newFakeDevice(t, func(rq *goipp.Message) *goipp.Message {
		if goipp.Op(rq.Code) != goipp.OpGetJobs {
			t.Errorf("expected Get-Jobs, got %s", goipp.Op(rq.Code))
		}

		rsp := goipp.NewResponse(goipp.MakeVersion(2, 0),
			goipp.StatusOk, rq.RequestID)

		rsp.Groups = goipp.Groups{
			{
				Tag: goipp.TagOperationGroup,
				Attrs: goipp.Attributes{
					goipp.MakeAttribute("attributes-charset",
						goipp.TagCharset, goipp.String("utf-8")),
				},
			},
			{
				Tag: goipp.TagJobGroup,
				Attrs: goipp.Attributes{
					goipp.MakeAttribute("job-id",
						goipp.TagInteger, goipp.Integer(101)),
					goipp.MakeAttribute("job-name",
						goipp.TagName, goipp.String("report.pdf")),
					goipp.MakeAttribute("job-state",
						goipp.TagEnum, goipp.Integer(5)),
					goipp.MakeAttribute("job-originating-user-name",
						goipp.TagName, goipp.String("alice")),
				},
			},
			{
				Tag: goipp.TagJobGroup,
				Attrs: goipp.Attributes{
					goipp.MakeAttribute("job-id",
						goipp.TagInteger, goipp.Integer(102)),
					goipp.MakeAttribute("job-name",
						goipp.TagName, goipp.String("photo.jpg")),
					goipp.MakeAttribute("job-state",
						goipp.TagEnum, goipp.Integer(4)),
					goipp.MakeAttribute("job-originating-user-name",
						goipp.TagName, goipp.String("bob")),
				},
			},
		}

		return rsp
	})

	c := dev.client(t)

	jobs, err := c.Jobs(context.Background())
	if err != nil {
		t.Fatalf("Jobs: %s", err)
	}

	expected := []Job{
		{ID: 101, Name: "report.pdf", State: JobProcessing, User: "alice"},
		{ID: 102, Name: "photo.jpg", State: JobHeld, User: "bob"},
	}

	if !reflect.DeepEqual(jobs, expected) {
		t.Errorf("jobs: expected %v, got %v", expected, jobs)
	}
}

// TestJobsEmpty tests an empty queue, including the placeholder job
// group without a job-id that some devices send
func TestJobsEmpty(t *testing.T) {
	dev := newFakeDevice(t, func(rq *goipp.Message) *goipp.Message {
		rsp := goipp.NewResponse(goipp.MakeVersion(2, 0),
			goipp.StatusOk, rq.RequestID)

		rsp.Groups = goipp.Groups{
			{
				Tag: goipp.TagJobGroup,
				Attrs: goipp.Attributes{
					goipp.MakeAttribute("job-state-reasons",
						goipp.TagKeyword, goipp.String("none")),
				},
			},
		}

		return rsp
	})

	c := dev.client(t)

	jobs, err := c.Jobs(context.Background())
	if err != nil {
		t.Fatalf("Jobs: %s", err)
	}

	if len(jobs) != 0 {
		t.Errorf("expected no jobs, got %v", jobs)
	}
}
