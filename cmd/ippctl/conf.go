/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Program configuration
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"
)

const (
	// ConfFileName defines a name of ippctl configuration file
	ConfFileName = "ippctl.conf"

	// ConfDir defines a path to the system configuration directory
	ConfDir = "/etc/ippctl"
)

// Configuration represents a program configuration
type Configuration struct {
	Host         string        // Printer host name or address
	Port         int           // Printer TCP port
	Path         string        // IPP endpoint path
	TLS          bool          // Use HTTPS/ipps
	VerifyTLS    bool          // Verify the device certificate
	User         string        // requesting-user-name to send
	Timeout      time.Duration // Per-request timeout
	PollInterval time.Duration // Monitor poll interval
	LogLevel     LogLevel      // Console log level
}

// Conf contains a global instance of program configuration
var Conf = Configuration{
	Port:         631,
	Path:         "/ipp/print",
	VerifyTLS:    true,
	User:         "ippctl",
	Timeout:      10 * time.Second,
	PollInterval: 30 * time.Second,
	LogLevel:     LogInfo,
}

// ConfLoad loads the program configuration. The system configuration
// directory is consulted first, then the executable's directory, then
// the explicit path, if given. Later files override earlier ones;
// missing files are silently skipped.
func ConfLoad(explicit string) error {
	exepath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("conf: %s", err)
	}

	files := []interface{}{
		filepath.Join(ConfDir, ConfFileName),
		filepath.Join(filepath.Dir(exepath), ConfFileName),
	}

	if explicit != "" {
		// An explicitly given file must exist
		if _, err = os.Stat(explicit); err != nil {
			return fmt.Errorf("conf: %s", err)
		}
		files = append(files, explicit)
	}

	file, err := ini.LooseLoad(files[0], files[1:]...)
	if err != nil {
		return fmt.Errorf("conf: %s", err)
	}

	printer := file.Section("printer")
	if key := printer.Key("host"); key.String() != "" {
		Conf.Host = key.String()
	}
	if key := printer.Key("port"); key.String() != "" {
		Conf.Port, err = key.Int()
		if err == nil && (Conf.Port < 1 || Conf.Port > 65535) {
			err = fmt.Errorf("port out of range: %d", Conf.Port)
		}
		if err != nil {
			return fmt.Errorf("conf: %s", err)
		}
	}
	if key := printer.Key("path"); key.String() != "" {
		Conf.Path = key.String()
	}
	if key := printer.Key("tls"); key.String() != "" {
		Conf.TLS, err = key.Bool()
		if err != nil {
			return fmt.Errorf("conf: %s", err)
		}
	}
	if key := printer.Key("verify-tls"); key.String() != "" {
		Conf.VerifyTLS, err = key.Bool()
		if err != nil {
			return fmt.Errorf("conf: %s", err)
		}
	}
	if key := printer.Key("user"); key.String() != "" {
		Conf.User = key.String()
	}
	if key := printer.Key("timeout"); key.String() != "" {
		Conf.Timeout, err = key.Duration()
		if err != nil {
			return fmt.Errorf("conf: %s", err)
		}
	}

	monitor := file.Section("monitor")
	if key := monitor.Key("interval"); key.String() != "" {
		Conf.PollInterval, err = key.Duration()
		if err != nil {
			return fmt.Errorf("conf: %s", err)
		}
	}

	logging := file.Section("logging")
	if key := logging.Key("level"); key.String() != "" {
		Conf.LogLevel, err = confLogLevel(key.String())
		if err != nil {
			return fmt.Errorf("conf: %s", err)
		}
	}

	return nil
}
