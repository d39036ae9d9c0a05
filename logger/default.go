package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Process-wide state. Install configuration with Init before the first
// Logger is built; without it the first lookup reads LOGGER_* variables.
var (
	stateMu       sync.Mutex
	flags         Flags
	flagsLoaded   bool
	defaultLogger *Logger
	defaultSink   Sink = ConsoleSink

	// logMutex serializes console writes across goroutines.
	logMutex sync.Mutex
)

// Dependency injection point for testing output.
var outStdout io.Writer = os.Stdout

// Init installs the process configuration and rebuilds the default logger
// from it. Loggers created earlier keep the levels they resolved.
func Init(f Flags) error {
	installed := make(Flags, len(f))
	for k, v := range f {
		installed[k] = v
	}
	l, err := New("", WithFlags(installed), WithPriority(Verbose), WithThrowPriority(Error))
	if err != nil {
		return err
	}

	stateMu.Lock()
	defer stateMu.Unlock()
	flags = installed
	flagsLoaded = true
	defaultLogger = l
	return nil
}

// CurrentFlags returns the process configuration. Callers must not modify it.
func CurrentFlags() Flags {
	stateMu.Lock()
	defer stateMu.Unlock()
	return currentFlagsLocked()
}

func currentFlagsLocked() Flags {
	if !flagsLoaded {
		flags = FlagsFromEnv(EnvPrefix, os.Environ())
		flagsLoaded = true
	}
	return flags
}

// Default returns the process logger: no category, logging every severity
// and failing on Error unless configuration says otherwise. It panics when
// the configuration holds a malformed "log" or "throw" value.
func Default() *Logger {
	stateMu.Lock()
	defer stateMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = MustNew("",
			WithFlags(currentFlagsLocked()),
			WithPriority(Verbose),
			WithThrowPriority(Error),
		)
	}
	return defaultLogger
}

// SetDefault replaces the process logger. nil makes the next Default call
// build a fresh one.
func SetDefault(l *Logger) {
	stateMu.Lock()
	defer stateMu.Unlock()
	defaultLogger = l
}

// DefaultSink returns the sink used by every Logger without its own.
func DefaultSink() Sink {
	stateMu.Lock()
	defer stateMu.Unlock()
	return defaultSink
}

// SetDefaultSink replaces the process sink. nil restores ConsoleSink.
func SetDefaultSink(s Sink) {
	if s == nil {
		s = ConsoleSink
	}
	stateMu.Lock()
	defer stateMu.Unlock()
	defaultSink = s
}

// Reset drops the installed configuration, the default logger and any
// replaced sink.
func Reset() {
	stateMu.Lock()
	defer stateMu.Unlock()
	flags = nil
	flagsLoaded = false
	defaultLogger = nil
	defaultSink = ConsoleSink
}

// ConsoleSink prints one line per message to stdout, prefixed with a
// [Type.Method:line] tag when a call site is attached.
// Thread-safe for concurrent use.
func ConsoleSink(msg string, site *CallSite) {
	logMutex.Lock()
	defer logMutex.Unlock()

	if site != nil {
		fmt.Fprintf(outStdout, "[%s] %s\n", site.Tag(), msg)
		return
	}
	fmt.Fprintln(outStdout, msg)
}

// Print logs msg without a severity on the default logger.
func Print(msg string) {
	l := Default()
	l.mustOpen()
	l.print(msg, l.callSite(nil))
}

// Printf is Print with fmt.Sprintf formatting.
func Printf(format string, args ...any) {
	l := Default()
	l.mustOpen()
	l.print(fmt.Sprintf(format, args...), l.callSite(nil))
}

// Log logs msg at s on the default logger. See Logger.LogIf.
func Log(s Severity, msg string) error {
	l := Default()
	l.mustOpen()
	return l.logIf(s, msg, l.callSite(nil))
}
