/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * The main function
 */

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ippctl/ippctl"
)

const usageText = `Usage:
    %s [options] command [argument]

Commands are:
    pause        - stop the printer processing jobs
    resume       - resume a paused printer
    purge        - remove all jobs from the queue
    hold JOB     - hold a job indefinitely
    release JOB  - release a held job
    cancel JOB   - cancel a job
    status       - print printer state and supply levels
    jobs         - list the job queue
    monitor      - poll and log printer state until interrupted
    discover     - find IPP printers on the local network

Options are
    -host HOST   - printer host name or address
    -port PORT   - printer TCP port (default 631)
    -path PATH   - IPP endpoint path (default /ipp/print)
    -tls         - connect with HTTPS
    -no-verify   - don't verify the device TLS certificate
    -user NAME   - requesting-user-name to send
    -timeout DUR - per-request timeout (default 10s)
    -conf FILE   - read configuration from FILE
    -d           - enable debug logging
`

// RunParameters represents the program run parameters
type RunParameters struct {
	Command  string // Command name
	JobID    int    // Job id argument, for job commands
	ConfFile string // Explicit configuration file, "" if none
	Debug    bool   // Enable debug logging

	// Command-line overrides, applied on top of the configuration
	// file. nil/"" means not set.
	Host     string
	Port     int
	Path     string
	TLS      bool
	NoVerify bool
	User     string
	Timeout  string
}

// commands maps command names to the catalogued operation they
// perform. Commands that are not plain control operations (status,
// jobs, monitor, discover) are dispatched separately.
var commands = map[string]struct {
	op       string // Operation name, "" for non-catalogue commands
	needsJob bool   // Command takes a JOB argument
}{
	"pause":    {op: "Pause-Printer"},
	"resume":   {op: "Resume-Printer"},
	"purge":    {op: "Purge-Jobs"},
	"hold":     {op: "Hold-Job", needsJob: true},
	"release":  {op: "Release-Job", needsJob: true},
	"cancel":   {op: "Cancel-Job", needsJob: true},
	"status":   {},
	"jobs":     {},
	"monitor":  {},
	"discover": {},
}

// usage prints detailed usage and exits
func usage() {
	fmt.Printf(usageText, os.Args[0])
	os.Exit(0)
}

// usageError prints usage error and exits
func usageError(format string, args ...interface{}) {
	if format != "" {
		fmt.Printf(format+"\n", args...)
	}

	fmt.Printf("Try %s -h for more information\n", os.Args[0])
	os.Exit(1)
}

// parseArgv parses program parameters. In a case of usage error,
// it prints a error message and exits
func parseArgv() (params RunParameters) {
	args := os.Args[1:]

	// optValue fetches the value of an option with a parameter
	optValue := func(opt string) string {
		if len(args) == 0 {
			usageError("Option %s requires a value", opt)
		}

		v := args[0]
		args = args[1:]

		return v
	}

	for len(args) > 0 {
		arg := args[0]
		args = args[1:]

		switch arg {
		case "-h", "-help", "--help":
			usage()
		case "-host":
			params.Host = optValue(arg)
		case "-port":
			port, err := strconv.Atoi(optValue(arg))
			if err != nil || port < 1 || port > 65535 {
				usageError("Invalid port")
			}
			params.Port = port
		case "-path":
			params.Path = optValue(arg)
		case "-tls":
			params.TLS = true
		case "-no-verify":
			params.NoVerify = true
		case "-user":
			params.User = optValue(arg)
		case "-timeout":
			params.Timeout = optValue(arg)
		case "-conf":
			params.ConfFile = optValue(arg)
		case "-d":
			params.Debug = true

		default:
			if strings.HasPrefix(arg, "-") {
				usageError("Invalid option %s", arg)
			}

			if params.Command == "" {
				if _, ok := commands[arg]; !ok {
					usageError("Invalid command %s", arg)
				}
				params.Command = arg
				continue
			}

			if !commands[params.Command].needsJob || params.JobID != 0 {
				usageError("Unexpected argument %s", arg)
			}

			id, err := strconv.Atoi(arg)
			if err != nil || id <= 0 {
				usageError("Invalid job id %s", arg)
			}
			params.JobID = id
		}
	}

	if params.Command == "" {
		usageError("Missing command")
	}

	if commands[params.Command].needsJob && params.JobID == 0 {
		usageError("Command %s requires a job id", params.Command)
	}

	return
}

// apply merges the command-line overrides into the configuration
func (params *RunParameters) apply() error {
	if params.Host != "" {
		Conf.Host = params.Host
	}
	if params.Port != 0 {
		Conf.Port = params.Port
	}
	if params.Path != "" {
		Conf.Path = params.Path
	}
	if params.TLS {
		Conf.TLS = true
	}
	if params.NoVerify {
		Conf.VerifyTLS = false
	}
	if params.User != "" {
		Conf.User = params.User
	}
	if params.Timeout != "" {
		timeout, err := time.ParseDuration(params.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout: %s", err)
		}
		Conf.Timeout = timeout
	}
	if params.Debug {
		Conf.LogLevel = LogDebug
	}

	return nil
}

// newClient creates an ippctl.Client from the effective configuration
func newClient() *ippctl.Client {
	if Conf.Host == "" {
		Log.Exit("No printer host. Use -host or the configuration file")
	}

	c := ippctl.NewClient(ippctl.Connection{
		Host:      Conf.Host,
		Port:      Conf.Port,
		BasePath:  Conf.Path,
		TLS:       Conf.TLS,
		VerifyTLS: Conf.VerifyTLS,
	})
	c.RequestingUser = Conf.User

	return c
}

// opContext returns a context bounded by the configured timeout
func opContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, Conf.Timeout)
}

// runOperation performs one catalogued control operation and, on
// success, re-fetches the printer state so the effect is visible.
// Failures are returned, not logged; DeviceStatusError already
// carries the operation, status and message.
func runOperation(c *ippctl.Client, opName string, jobID int) error {
	ctx, cancel := opContext(context.Background())
	defer cancel()

	Log.Debug("%s: sending to %s", opName, c.Conn.URL())

	outcome, err := c.Do(ctx, opName, jobID)
	if err != nil {
		return err
	}

	Log.Info("%s: %s", opName, outcome.Status)
	for _, name := range outcome.Unsupported {
		Log.Info("%s: attribute %s not supported by device",
			opName, name)
	}

	return printStatus(c)
}

// printStatus fetches and prints the printer status snapshot
func printStatus(c *ippctl.Client) error {
	ctx, cancel := opContext(context.Background())
	defer cancel()

	p, err := c.PrinterAttributes(ctx)
	if err != nil {
		return err
	}

	name := p.Name
	if name == "" {
		name = Conf.Host
	}

	fmt.Printf("%s: %s", name, p.State)
	if p.StateMessage != "" {
		fmt.Printf(" (%s)", p.StateMessage)
	}
	fmt.Printf("\n")

	if p.MakeAndModel != "" {
		fmt.Printf("  model:    %s\n", p.MakeAndModel)
	}
	if p.Location != "" {
		fmt.Printf("  location: %s\n", p.Location)
	}
	if len(p.StateReasons) > 0 {
		fmt.Printf("  reasons:  %s\n", strings.Join(p.StateReasons, ", "))
	}
	if p.QueuedJobs >= 0 {
		fmt.Printf("  queued:   %d\n", p.QueuedJobs)
	}

	for _, m := range p.Markers {
		level := "?"
		if m.Level >= 0 {
			level = strconv.Itoa(m.Level) + "%"
		}
		fmt.Printf("  %-8s  %s: %s\n", m.Type, m.Name, level)
	}

	return nil
}

// printJobs fetches and prints the job queue
func printJobs(c *ippctl.Client) error {
	ctx, cancel := opContext(context.Background())
	defer cancel()

	jobs, err := c.Jobs(ctx)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		fmt.Printf("No jobs\n")
		return nil
	}

	fmt.Printf("%-6s %-18s %-10s %s\n", "JOB", "STATE", "USER", "NAME")
	for _, job := range jobs {
		fmt.Printf("%-6d %-18s %-10s %s\n",
			job.ID, job.State, job.User, job.Name)
	}

	return nil
}

// The main function
func main() {
	params := parseArgv()

	err := ConfLoad(params.ConfFile)
	Log.Check(err)

	err = params.apply()
	Log.Check(err)

	Log.SetLevel(Conf.LogLevel)

	if params.Command == "discover" {
		discover()
		return
	}

	c := newClient()

	switch params.Command {
	case "status":
		err = printStatus(c)
	case "jobs":
		err = printJobs(c)
	case "monitor":
		monitor(c)
	default:
		err = runOperation(c, commands[params.Command].op, params.JobID)
	}

	Log.Check(err)
}
