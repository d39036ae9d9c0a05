package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Severity orders messages by importance. Lower ranks are more important,
// except None which marks an unconditional message.
type Severity uint8

const (
	// None is the sentinel for messages logged without a severity.
	None Severity = iota
	// Error is the most important loggable severity.
	Error
	// Warn marks recoverable problems.
	Warn
	// Info marks normal operational messages.
	Info
	// Verbose marks diagnostic detail.
	Verbose
)

var severityNames = [...]string{"NONE", "ERROR", "WARN", "INFO", "VERBOSE"}

// ErrInvalidSeverity is matched by every *SeverityError.
var ErrInvalidSeverity = errors.New("invalid severity")

// SeverityError reports a token that names no severity.
type SeverityError struct {
	Token string
}

func (e *SeverityError) Error() string {
	return fmt.Sprintf("invalid severity %q", e.Token)
}

// Is lets errors.Is(err, ErrInvalidSeverity) match.
func (e *SeverityError) Is(target error) bool {
	return target == ErrInvalidSeverity
}

// AllSeverities returns the loggable severities, most important first.
func AllSeverities() []Severity {
	return []Severity{Error, Warn, Info, Verbose}
}

// Rank returns the ordinal of s, 0 for None through 4 for Verbose.
func (s Severity) Rank() int {
	return int(s)
}

// String returns the canonical uppercase name.
func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

func (s Severity) valid() bool {
	return s <= Verbose
}

// ParseSeverity accepts a case-insensitive name or a rank "0" through "4".
func ParseSeverity(text string) (Severity, error) {
	token := strings.TrimSpace(text)
	switch strings.ToUpper(token) {
	case "NONE", "0":
		return None, nil
	case "ERROR", "1":
		return Error, nil
	case "WARN", "2":
		return Warn, nil
	case "INFO", "3":
		return Info, nil
	case "VERBOSE", "4":
		return Verbose, nil
	}
	return None, &SeverityError{Token: text}
}
