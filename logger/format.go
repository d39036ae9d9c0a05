package logger

import (
	"fmt"
	"strings"
)

// Formatter renders a message for a Logger. category is empty for the
// default logger; sev is None for direct calls.
type Formatter func(category string, sev Severity, msg string, site *CallSite) string

// Sink receives every message that passed filtering, already formatted.
type Sink func(msg string, site *CallSite)

// DefaultFormatter produces "id[SEV]: msg", "SEV: msg", "id: msg" or "msg"
// depending on which of category and severity are present.
func DefaultFormatter(category string, sev Severity, msg string, _ *CallSite) string {
	switch {
	case category != "" && sev != None:
		return category + "[" + sev.String() + "]: " + msg
	case sev != None:
		return sev.String() + ": " + msg
	case category != "":
		return category + ": " + msg
	default:
		return msg
	}
}

// encodeFields formats key-value pairs as " key=value" strings.
// Pairs whose key is not a string are skipped, as is a trailing odd value.
func encodeFields(keyvals ...any) string {
	if len(keyvals) == 0 {
		return ""
	}
	parts := make([]string, 0, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s=%v", key, keyvals[i+1]))
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}
