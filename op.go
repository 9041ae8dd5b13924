/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * IPP operation codes
 */

package ippctl

import (
	"fmt"
)

// Op represents an IPP operation code
type Op uint16

// Op codes used by this client
const (
	OpCancelJob            Op = 0x0008 // Cancel-Job: Cancel a job
	OpGetJobs              Op = 0x000a // Get-Jobs: Get a list of jobs
	OpGetPrinterAttributes Op = 0x000b // Get-Printer-Attributes: Get printer information
	OpHoldJob              Op = 0x000c // Hold-Job: Hold a job for printing
	OpReleaseJob           Op = 0x000d // Release-Job: Release a held job
	OpPausePrinter         Op = 0x0010 // Pause-Printer: Stop a printer
	OpResumePrinter        Op = 0x0011 // Resume-Printer: Start a printer
	OpPurgeJobs            Op = 0x0012 // Purge-Jobs: Delete all jobs
)

// String returns an operation name, as defined by RFC 8011
func (op Op) String() string {
	if s := opNames[op]; s != "" {
		return s
	}

	return fmt.Sprintf("0x%4.4x", uint(op))
}

var opNames = map[Op]string{
	OpCancelJob:            "Cancel-Job",
	OpGetJobs:              "Get-Jobs",
	OpGetPrinterAttributes: "Get-Printer-Attributes",
	OpHoldJob:              "Hold-Job",
	OpReleaseJob:           "Release-Job",
	OpPausePrinter:         "Pause-Printer",
	OpResumePrinter:        "Resume-Printer",
	OpPurgeJobs:            "Purge-Jobs",
}
