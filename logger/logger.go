package logger

import (
	"fmt"
)

// Logger is a named category with independent log and throw level sets.
//
// A Logger is not safe for concurrent mutation; guard shared instances
// externally if their levels, formatter or sink change while in use.
type Logger struct {
	category    string
	logLevels   LevelSet
	throwLevels LevelSet
	formatter   Formatter
	sink        Sink
	withCaller  bool
	closed      bool

	// Per-severity entry points, created with the Logger.
	Error   *Level
	Warn    *Level
	Info    *Level
	Verbose *Level
}

// ThresholdError is returned when a message is logged at a severity
// configured to throw. Its text is the fully formatted message.
type ThresholdError struct {
	Category string
	Severity Severity
	Message  string
}

func (e *ThresholdError) Error() string {
	return e.Message
}

type options struct {
	priority      Severity
	throwPriority Severity
	formatter     Formatter
	sink          Sink
	flags         Flags
	hasFlags      bool
	caller        bool
}

// Option configures a Logger during New.
type Option func(*options)

// WithPriority sets the log threshold used when configuration has no
// override. The default is Warn.
func WithPriority(s Severity) Option {
	return func(o *options) {
		o.priority = s
	}
}

// WithThrowPriority sets the throw threshold used when configuration has no
// override. The default is Error.
func WithThrowPriority(s Severity) Option {
	return func(o *options) {
		o.throwPriority = s
	}
}

// WithFormatter replaces DefaultFormatter.
func WithFormatter(f Formatter) Option {
	return func(o *options) {
		o.formatter = f
	}
}

// WithSink sends messages to s instead of the process default sink.
func WithSink(s Sink) Option {
	return func(o *options) {
		o.sink = s
	}
}

// WithFlags resolves levels against flags instead of CurrentFlags.
func WithFlags(flags Flags) Option {
	return func(o *options) {
		o.flags = flags
		o.hasFlags = true
	}
}

// WithCaller captures the call site of every message that does not carry one.
func WithCaller(enabled bool) Option {
	return func(o *options) {
		o.caller = enabled
	}
}

// New builds a Logger for category, which may be empty for an anonymous
// logger. Its level sets come from Resolve: "<feature>.log" beats "log"
// beats the WithPriority threshold, and likewise for throw. A malformed
// configuration value fails with an error matching ErrInvalidSeverity.
func New(category string, opts ...Option) (*Logger, error) {
	o := options{priority: Warn, throwPriority: Error}
	for _, opt := range opts {
		opt(&o)
	}
	flags := o.flags
	if !o.hasFlags {
		flags = CurrentFlags()
	}

	logLevels, err := Resolve(flags, KindLog, category, FromThreshold(o.priority))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", Key(KindLog, category), err)
	}
	throwLevels, err := Resolve(flags, KindThrow, category, FromThreshold(o.throwPriority))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", Key(KindThrow, category), err)
	}

	l := &Logger{
		category:    category,
		logLevels:   logLevels,
		throwLevels: throwLevels,
		formatter:   o.formatter,
		sink:        o.sink,
		withCaller:  o.caller,
	}
	l.Error = &Level{owner: l, severity: Error}
	l.Warn = &Level{owner: l, severity: Warn}
	l.Info = &Level{owner: l, severity: Info}
	l.Verbose = &Level{owner: l, severity: Verbose}
	return l, nil
}

// MustNew is like New but panics on error.
func MustNew(category string, opts ...Option) *Logger {
	l, err := New(category, opts...)
	if err != nil {
		panic("logger: " + err.Error())
	}
	return l
}

func (l *Logger) mustOpen() {
	if l == nil || l.closed {
		panic("logger: use of closed Logger")
	}
}

// callSite must be called directly from an exported entry point so the
// captured frame is the caller of that entry point.
func (l *Logger) callSite(site *CallSite) *CallSite {
	if site == nil && l.withCaller {
		return Caller(2)
	}
	return site
}

// Category returns the name given to New.
func (l *Logger) Category() string {
	l.mustOpen()
	return l.category
}

// Level returns the child bound to s. It panics for None or an unknown
// severity, which have no child.
func (l *Logger) Level(s Severity) *Level {
	l.mustOpen()
	switch s {
	case Error:
		return l.Error
	case Warn:
		return l.Warn
	case Info:
		return l.Info
	case Verbose:
		return l.Verbose
	}
	panic("logger: no Level for severity " + s.String())
}

// LogLevels returns a copy of the severities that log.
func (l *Logger) LogLevels() LevelSet {
	l.mustOpen()
	return l.logLevels
}

// ThrowLevels returns a copy of the severities that fail.
func (l *Logger) ThrowLevels() LevelSet {
	l.mustOpen()
	return l.throwLevels
}

// SetLogLevels replaces the log set wholesale.
func (l *Logger) SetLogLevels(set LevelSet) {
	l.mustOpen()
	l.logLevels = set
}

// SetThrowLevels replaces the throw set wholesale.
func (l *Logger) SetThrowLevels(set LevelSet) {
	l.mustOpen()
	l.throwLevels = set
}

// SetPriority logs s and everything more important, nothing else.
func (l *Logger) SetPriority(s Severity) {
	l.mustOpen()
	l.logLevels.SetThreshold(s)
}

// SetThrowPriority fails on s and everything more important, nothing else.
func (l *Logger) SetThrowPriority(s Severity) {
	l.mustOpen()
	l.throwLevels.SetThreshold(s)
}

// Enabled reports whether s is in the log set.
func (l *Logger) Enabled(s Severity) bool {
	l.mustOpen()
	return l.logLevels.Contains(s)
}

// Throws reports whether s is in the throw set.
func (l *Logger) Throws(s Severity) bool {
	l.mustOpen()
	return l.throwLevels.Contains(s)
}

// Formatter returns the formatter in use.
func (l *Logger) Formatter() Formatter {
	l.mustOpen()
	if l.formatter == nil {
		return DefaultFormatter
	}
	return l.formatter
}

// SetFormatter replaces the formatter. nil restores DefaultFormatter.
func (l *Logger) SetFormatter(f Formatter) {
	l.mustOpen()
	l.formatter = f
}

// Sink returns the sink messages go to.
func (l *Logger) Sink() Sink {
	l.mustOpen()
	if l.sink == nil {
		return DefaultSink()
	}
	return l.sink
}

// SetSink replaces the sink. nil restores delegation to DefaultSink, which
// is looked up on every message.
func (l *Logger) SetSink(s Sink) {
	l.mustOpen()
	l.sink = s
}

func (l *Logger) format(s Severity, msg string, site *CallSite) string {
	return l.Formatter()(l.category, s, msg, site)
}

func (l *Logger) emit(s Severity, msg string, site *CallSite) {
	l.Sink()(l.format(s, msg, site), site)
}

// Print logs msg without a severity. It logs whenever the log set is not
// empty and never fails, whatever the throw set holds.
func (l *Logger) Print(msg string) {
	l.mustOpen()
	l.print(msg, l.callSite(nil))
}

// Printf is Print with fmt.Sprintf formatting.
func (l *Logger) Printf(format string, args ...any) {
	l.mustOpen()
	l.print(fmt.Sprintf(format, args...), l.callSite(nil))
}

// PrintAt is Print with an explicit call site.
func (l *Logger) PrintAt(site *CallSite, msg string) {
	l.mustOpen()
	l.print(msg, l.callSite(site))
}

func (l *Logger) print(msg string, site *CallSite) {
	if l.logLevels.IsEmpty() {
		return
	}
	l.emit(None, msg, site)
}

// LogIf logs msg at s. If s is in the throw set nothing is logged and a
// *ThresholdError carrying the formatted message is returned instead.
func (l *Logger) LogIf(s Severity, msg string, site *CallSite) error {
	l.mustOpen()
	return l.logIf(s, msg, l.callSite(site))
}

func (l *Logger) logIf(s Severity, msg string, site *CallSite) error {
	if l.throwLevels.Contains(s) {
		return l.fail(s, msg, site)
	}
	if l.logLevels.Contains(s) {
		l.emit(s, msg, site)
	}
	return nil
}

// Fail returns the error LogIf would return for a throwing severity,
// regardless of the throw set. Nothing is logged.
func (l *Logger) Fail(s Severity, msg string, site *CallSite) error {
	l.mustOpen()
	return l.fail(s, msg, l.callSite(site))
}

func (l *Logger) fail(s Severity, msg string, site *CallSite) error {
	return &ThresholdError{
		Category: l.category,
		Severity: s,
		Message:  l.format(s, msg, site),
	}
}

// Close detaches the four children and releases the Logger. Any later call
// on the Logger or its children panics.
func (l *Logger) Close() {
	l.mustOpen()
	for _, child := range []*Level{l.Error, l.Warn, l.Info, l.Verbose} {
		child.Close()
	}
	l.Error, l.Warn, l.Info, l.Verbose = nil, nil, nil, nil
	l.formatter = nil
	l.sink = nil
	l.closed = true
}
