package logger

import (
	"fmt"
)

// Level is a Logger's entry point for one severity. It holds no state of its
// own: Enabled and Throws read and write the owner's level sets.
type Level struct {
	owner    *Logger
	severity Severity
}

func (lv *Level) mustOwner() *Logger {
	if lv == nil || lv.owner == nil {
		panic("logger: use of closed Level")
	}
	lv.owner.mustOpen()
	return lv.owner
}

// Severity returns the severity the Level is bound to.
func (lv *Level) Severity() Severity {
	lv.mustOwner()
	return lv.severity
}

// Log logs msg at the bound severity, or returns a *ThresholdError instead
// when that severity throws.
func (lv *Level) Log(msg string) error {
	o := lv.mustOwner()
	return o.logIf(lv.severity, msg, o.callSite(nil))
}

// Logf is Log with fmt.Sprintf formatting.
func (lv *Level) Logf(format string, args ...any) error {
	o := lv.mustOwner()
	return o.logIf(lv.severity, fmt.Sprintf(format, args...), o.callSite(nil))
}

// LogAt is Log with an explicit call site.
func (lv *Level) LogAt(site *CallSite, msg string) error {
	o := lv.mustOwner()
	return o.logIf(lv.severity, msg, o.callSite(site))
}

// LogKV logs msg followed by key=value pairs.
//
//	log.Info.LogKV("request completed", "status", 200, "path", "/api/users")
func (lv *Level) LogKV(msg string, keyvals ...any) error {
	o := lv.mustOwner()
	return o.logIf(lv.severity, msg+encodeFields(keyvals...), o.callSite(nil))
}

// Enabled reports whether the bound severity is in the owner's log set.
func (lv *Level) Enabled() bool {
	return lv.mustOwner().logLevels.Contains(lv.severity)
}

// SetEnabled adds or removes the bound severity from the owner's log set and
// returns enabled.
func (lv *Level) SetEnabled(enabled bool) bool {
	return lv.mustOwner().logLevels.SetEnabled(lv.severity, enabled)
}

// Throws reports whether the bound severity is in the owner's throw set.
func (lv *Level) Throws() bool {
	return lv.mustOwner().throwLevels.Contains(lv.severity)
}

// SetThrows adds or removes the bound severity from the owner's throw set and
// returns throws.
func (lv *Level) SetThrows(throws bool) bool {
	return lv.mustOwner().throwLevels.SetEnabled(lv.severity, throws)
}

// Close severs the Level from its Logger. Later calls panic.
func (lv *Level) Close() {
	if lv == nil {
		return
	}
	lv.owner = nil
}
