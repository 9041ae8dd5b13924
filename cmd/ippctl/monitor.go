/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Printer state monitoring
 */

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ippctl/ippctl"
)

// monitor polls the printer until interrupted, logging state
// transitions. Poll failures are logged and the loop keeps going;
// a flaky network must not kill a long-running monitor.
func monitor(c *ippctl.Client) {
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	Log.Info("monitoring %s, poll interval %s",
		c.Conn.URL(), Conf.PollInterval)

	var prev *ippctl.Printer
	prevJobs := -1

	ticker := time.NewTicker(Conf.PollInterval)
	defer ticker.Stop()

	for {
		p, jobs, err := monitorPoll(ctx, c)
		switch {
		case ctx.Err() != nil:
			Log.Info("interrupted, exiting")
			return

		case err != nil:
			Log.Error("poll: %s", err)

		default:
			monitorReport(prev, p, prevJobs, len(jobs))
			prev = p
			prevJobs = len(jobs)
		}

		select {
		case <-ctx.Done():
			Log.Info("interrupted, exiting")
			return
		case <-ticker.C:
		}
	}
}

// monitorPoll performs one poll round. The configured timeout bounds
// each request separately, not the round as a whole.
func monitorPoll(ctx context.Context, c *ippctl.Client) (
	*ippctl.Printer, []ippctl.Job, error) {

	pctx, cancel := opContext(ctx)
	p, err := c.PrinterAttributes(pctx)
	cancel()
	if err != nil {
		return nil, nil, err
	}

	jctx, cancel := opContext(ctx)
	jobs, err := c.Jobs(jctx)
	cancel()
	if err != nil {
		return nil, nil, err
	}

	return p, jobs, nil
}

// monitorReport logs the differences between two poll rounds
func monitorReport(prev, p *ippctl.Printer, prevJobs, jobs int) {
	if prev == nil || prev.State != p.State {
		msg := p.State.String()
		if p.StateMessage != "" {
			msg += " (" + p.StateMessage + ")"
		}
		Log.Info("state: %s", msg)
	}

	if prev == nil || !equalStrings(prev.StateReasons, p.StateReasons) {
		reasons := "none"
		if len(p.StateReasons) > 0 {
			reasons = strings.Join(p.StateReasons, ", ")
		}
		Log.Info("reasons: %s", reasons)
	}

	if prevJobs != jobs {
		Log.Info("jobs in queue: %d", jobs)
	}

	for _, m := range p.Markers {
		if m.Level >= 0 && m.LowLevel >= 0 && m.Level <= m.LowLevel {
			Log.Info("supply low: %s (%d%%)", m.Name, m.Level)
		}
	}
}

// equalStrings compares two string slices
func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
