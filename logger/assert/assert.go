// Package assert reports failed checks through a Logger's fail path, so the
// resulting error reads like any other message the Logger formats.
package assert

import (
	"fmt"

	"github.com/mordilloSan/go-catlog/logger"
)

// Severity is the level failures are reported at.
const Severity = logger.Error

// That returns nil when ok holds, otherwise the Logger's failure for msg.
func That(l *logger.Logger, ok bool, msg string) error {
	if ok {
		return nil
	}
	return l.Fail(Severity, msg, logger.Caller(1))
}

// Thatf is That with fmt.Sprintf formatting.
func Thatf(l *logger.Logger, ok bool, format string, args ...any) error {
	if ok {
		return nil
	}
	return l.Fail(Severity, fmt.Sprintf(format, args...), logger.Caller(1))
}

// Satisfies checks value against a caller supplied predicate.
func Satisfies(l *logger.Logger, value any, pred func(any) bool, msg string) error {
	if pred(value) {
		return nil
	}
	return l.Fail(Severity, fmt.Sprintf("%s (got %v)", msg, value), logger.Caller(1))
}

// NoError fails when err is not nil, using its text as the message.
func NoError(l *logger.Logger, err error) error {
	if err == nil {
		return nil
	}
	return l.Fail(Severity, err.Error(), logger.Caller(1))
}
