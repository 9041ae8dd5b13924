/* ippctl - IPP printer and job control
 *
 * Copyright (C) 2026 and up by the ippctl authors
 * See LICENSE for license terms and conditions
 *
 * Console logging
 */

package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel enumerates possible log levels
type LogLevel int

// LogLevel constants
const (
	LogError LogLevel = iota
	LogInfo
	LogDebug
)

// String returns LogLevel name
func (l LogLevel) String() string {
	switch l {
	case LogError:
		return "error"
	case LogInfo:
		return "info"
	case LogDebug:
		return "debug"
	}

	return fmt.Sprintf("unknown (%d)", int(l))
}

// confLogLevel parses a log level name from the configuration file
func confLogLevel(s string) (LogLevel, error) {
	switch s {
	case "error":
		return LogError, nil
	case "info":
		return LogInfo, nil
	case "debug":
		return LogDebug, nil
	}

	return 0, fmt.Errorf("invalid log level %q", s)
}

// Logger writes leveled messages to the console
type Logger struct {
	mu    sync.Mutex // Write lock
	level LogLevel   // Maximum level that gets through
	out   io.Writer  // Output destination
}

// Log is the program logger
var Log = &Logger{level: LogInfo, out: os.Stderr}

// SetLevel changes the maximum level that gets through
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// format writes one message, if the level permits
func (l *Logger) format(level LogLevel, prefix, format string,
	args ...interface{}) {

	l.mu.Lock()
	defer l.mu.Unlock()

	if level > l.level {
		return
	}

	stamp := time.Now().Format("15:04:05")
	fmt.Fprintf(l.out, "%s %s %s\n",
		stamp, prefix, fmt.Sprintf(format, args...))
}

// Debug writes a debug message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.format(LogDebug, " ", format, args...)
}

// Info writes an informational message
func (l *Logger) Info(format string, args ...interface{}) {
	l.format(LogInfo, " ", format, args...)
}

// Error writes an error message
func (l *Logger) Error(format string, args ...interface{}) {
	l.format(LogError, "!", format, args...)
}

// Exit writes an error message and terminates the program
func (l *Logger) Exit(format string, args ...interface{}) {
	l.Error(format, args...)
	os.Exit(1)
}

// Check terminates the program if err is not nil
func (l *Logger) Check(err error) {
	if err != nil {
		l.Exit("%s", err)
	}
}
