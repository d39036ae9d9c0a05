package logger

import (
	"errors"
	"strings"
	"testing"
)

// capture records every message a Logger sends to its sink.
type capture struct {
	msgs  []string
	sites []*CallSite
}

func (c *capture) sink(msg string, site *CallSite) {
	c.msgs = append(c.msgs, msg)
	c.sites = append(c.sites, site)
}

func newCaptured(t *testing.T, category string, opts ...Option) (*Logger, *capture) {
	t.Helper()
	c := &capture{}
	opts = append([]Option{WithFlags(Flags{}), WithSink(c.sink)}, opts...)
	l, err := New(category, opts...)
	if err != nil {
		t.Fatalf("New(%q) unexpected error: %v", category, err)
	}
	return l, c
}

func TestThrowWinsOverLog(t *testing.T) {
	l, c := newCaptured(t, "", WithPriority(Verbose), WithThrowPriority(Error))

	err := l.Error.Log("boom")
	if err == nil {
		t.Fatalf("Error level should fail")
	}
	if len(c.msgs) != 0 {
		t.Fatalf("a throwing level must not log, got %q", c.msgs)
	}
	var te *ThresholdError
	if !errors.As(err, &te) || te.Severity != Error {
		t.Fatalf("expected *ThresholdError at Error, got %#v", err)
	}
	if err.Error() != "ERROR: boom" {
		t.Fatalf("error text = %q", err.Error())
	}

	if err := l.Warn.Log("careful"); err != nil {
		t.Fatalf("Warn should not fail: %v", err)
	}
	if len(c.msgs) != 1 {
		t.Fatalf("Warn should log exactly once, got %q", c.msgs)
	}
	if !strings.Contains(c.msgs[0], "WARN") || !strings.Contains(c.msgs[0], "careful") {
		t.Fatalf("unexpected message %q", c.msgs[0])
	}
}

func TestPrintNeverThrows(t *testing.T) {
	l, c := newCaptured(t, "Net", WithThrowPriority(Verbose))
	l.Print("hello")
	l.Printf("n=%d", 3)
	if len(c.msgs) != 2 || c.msgs[0] != "Net: hello" || c.msgs[1] != "Net: n=3" {
		t.Fatalf("unexpected messages %q", c.msgs)
	}

	l.SetPriority(None)
	l.Print("hidden")
	if len(c.msgs) != 2 {
		t.Fatalf("Print with an empty log set should be a no-op, got %q", c.msgs)
	}

	l.SetLogLevels(Of(Verbose))
	l.Print("shown")
	if len(c.msgs) != 3 {
		t.Fatalf("Print should log while any level is enabled, got %q", c.msgs)
	}
}

func TestToggling(t *testing.T) {
	l, c := newCaptured(t, "UI", WithPriority(Info), WithThrowPriority(None))

	if !l.Info.Enabled() {
		t.Fatalf("Info should start enabled")
	}
	if got := l.Info.SetEnabled(false); got {
		t.Fatalf("SetEnabled should return the value passed")
	}
	if err := l.Info.Log("quiet"); err != nil || len(c.msgs) != 0 {
		t.Fatalf("disabled level should not log, got %q, %v", c.msgs, err)
	}
	if l.Enabled(Info) {
		t.Fatalf("Level toggles should be visible on the Logger")
	}

	if got := l.Warn.SetThrows(true); !got {
		t.Fatalf("SetThrows should return the value passed")
	}
	if !l.Warn.Enabled() || !l.Warn.Throws() || !l.Throws(Warn) {
		t.Fatalf("Warn should be both enabled and throwing")
	}
	if err := l.Warn.Log("now fails"); err == nil || len(c.msgs) != 0 {
		t.Fatalf("throwing level should fail without logging, got %q, %v", c.msgs, err)
	}

	l.Warn.SetThrows(false)
	if err := l.Warn.Log("logs again"); err != nil || len(c.msgs) != 1 {
		t.Fatalf("Warn should log again, got %q, %v", c.msgs, err)
	}
}

func TestSpecialCategoryScenario(t *testing.T) {
	l, c := newCaptured(t, "Special", WithPriority(Warn), WithThrowPriority(Error))

	if err := l.Warn.Log("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Info.Log("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.SetPriority(Info)
	if err := l.Info.Log("x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Special[WARN]: x", "Special[INFO]: x"}
	if strings.Join(c.msgs, "|") != strings.Join(want, "|") {
		t.Fatalf("messages = %q, want %q", c.msgs, want)
	}

	err := l.Error.Log("x")
	if err == nil || err.Error() != "Special[ERROR]: x" {
		t.Fatalf("Error should fail with the formatted message, got %v", err)
	}
	if len(c.msgs) != 2 {
		t.Fatalf("Error must not log, got %q", c.msgs)
	}
}

func TestNewResolvesFromFlags(t *testing.T) {
	flags := Flags{"log": "ERROR", "combat.log": "VERBOSE", "combat.throw": "NONE"}
	combat, _ := newCaptured(t, "Combat", WithFlags(flags))
	if combat.LogLevels() != FromThreshold(Verbose) {
		t.Fatalf("Combat log levels = %v", combat.LogLevels())
	}
	if !combat.ThrowLevels().IsEmpty() {
		t.Fatalf("Combat throw levels = %v", combat.ThrowLevels())
	}

	other, _ := newCaptured(t, "Other", WithFlags(flags), WithPriority(Verbose))
	if other.LogLevels() != Of(Error) {
		t.Fatalf("Other log levels = %v", other.LogLevels())
	}
	if other.ThrowLevels() != Of(Error) {
		t.Fatalf("Other throw levels should use the constructor default, got %v", other.ThrowLevels())
	}
}

func TestNewInvalidFlags(t *testing.T) {
	_, err := New("Combat", WithFlags(Flags{"combat.throw": "sometimes"}))
	if !errors.Is(err, ErrInvalidSeverity) {
		t.Fatalf("expected ErrInvalidSeverity, got %v", err)
	}
	if !strings.Contains(err.Error(), "combat.throw") {
		t.Fatalf("error should name the key, got %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustNew should panic on invalid flags")
		}
	}()
	MustNew("", WithFlags(Flags{"log": "x"}))
}

func TestCustomFormatter(t *testing.T) {
	f := func(category string, sev Severity, msg string, site *CallSite) string {
		return "<" + category + "|" + sev.String() + "> " + msg
	}
	l, c := newCaptured(t, "AI", WithFormatter(f))
	l.Warn.Log("thinking")
	if c.msgs[0] != "<AI|WARN> thinking" {
		t.Fatalf("formatter not applied, got %q", c.msgs[0])
	}
	if err := l.Error.Log("stuck"); err == nil || err.Error() != "<AI|ERROR> stuck" {
		t.Fatalf("formatter should apply to failures, got %v", err)
	}

	l.SetFormatter(nil)
	l.Warn.Log("back")
	if c.msgs[1] != "AI[WARN]: back" {
		t.Fatalf("nil formatter should restore the default, got %q", c.msgs[1])
	}
}

func TestDefaultFormatter(t *testing.T) {
	cases := []struct {
		category string
		sev      Severity
		want     string
	}{
		{"Net", Info, "Net[INFO]: m"},
		{"", Info, "INFO: m"},
		{"Net", None, "Net: m"},
		{"", None, "m"},
	}
	for _, tc := range cases {
		if got := DefaultFormatter(tc.category, tc.sev, "m", nil); got != tc.want {
			t.Fatalf("DefaultFormatter(%q, %v) = %q, want %q", tc.category, tc.sev, got, tc.want)
		}
	}
}

func TestLogfAndLogKV(t *testing.T) {
	l, c := newCaptured(t, "", WithPriority(Info))
	l.Info.Logf("hello %s", "world")
	l.Warn.LogKV("request completed", "status", 200, "path", "/api", 7, "skipped", "dangling")
	if c.msgs[0] != "INFO: hello world" {
		t.Fatalf("Logf = %q", c.msgs[0])
	}
	if c.msgs[1] != "WARN: request completed status=200 path=/api" {
		t.Fatalf("LogKV = %q", c.msgs[1])
	}
}

func TestLogIfAndFail(t *testing.T) {
	l, c := newCaptured(t, "Core", WithPriority(Info), WithThrowPriority(None))
	if err := l.LogIf(Info, "a", nil); err != nil || len(c.msgs) != 1 {
		t.Fatalf("LogIf(Info) should log, got %q, %v", c.msgs, err)
	}
	if err := l.LogIf(Verbose, "b", nil); err != nil || len(c.msgs) != 1 {
		t.Fatalf("LogIf(Verbose) should be a no-op, got %q, %v", c.msgs, err)
	}
	if err := l.LogIf(None, "c", nil); err != nil || len(c.msgs) != 1 {
		t.Fatalf("LogIf(None) should be a no-op, got %q, %v", c.msgs, err)
	}

	err := l.Fail(Warn, "forced", nil)
	if err == nil || err.Error() != "Core[WARN]: forced" || len(c.msgs) != 1 {
		t.Fatalf("Fail should fail without logging, got %q, %v", c.msgs, err)
	}
	var te *ThresholdError
	if !errors.As(err, &te) || te.Category != "Core" || te.Severity != Warn {
		t.Fatalf("failure should carry category and severity, got %#v", err)
	}

	global, _ := newCaptured(t, "")
	err = global.LogIf(Error, "boom", nil)
	if !errors.As(err, &te) || te.Category != "" || te.Message != "ERROR: boom" {
		t.Fatalf("global logger failure = %#v", err)
	}
}

func TestExplicitCallSite(t *testing.T) {
	l, c := newCaptured(t, "")
	site := &CallSite{File: "game.go", Line: 10, Type: "Player", Method: "Hit"}
	l.Warn.LogAt(site, "ouch")
	l.PrintAt(site, "plain")
	if c.sites[0] != site || c.sites[1] != site {
		t.Fatalf("call site should reach the sink unchanged")
	}
}

func TestWithCallerCapturesTestFunction(t *testing.T) {
	l, c := newCaptured(t, "", WithCaller(true))
	l.Warn.Log("where")
	l.Print("here")
	for i, site := range c.sites {
		if site == nil {
			t.Fatalf("message %d should carry a call site", i)
		}
		if site.Method != "TestWithCallerCapturesTestFunction" {
			t.Fatalf("message %d captured %+v, want the test function", i, site)
		}
		if !strings.HasSuffix(site.File, "logger_test.go") || site.Line == 0 {
			t.Fatalf("message %d captured %+v", i, site)
		}
	}

	l2, c2 := newCaptured(t, "")
	l2.Warn.Log("no site")
	if c2.sites[0] != nil {
		t.Fatalf("call site should not be captured by default")
	}
}

func TestLevelAccessor(t *testing.T) {
	l, _ := newCaptured(t, "")
	for _, s := range AllSeverities() {
		if l.Level(s).Severity() != s {
			t.Fatalf("Level(%v) bound to %v", s, l.Level(s).Severity())
		}
	}
	for _, s := range []Severity{None, Severity(7)} {
		func() {
			defer func() {
				r := recover()
				msg, _ := r.(string)
				if !strings.Contains(msg, "no Level for severity "+s.String()) {
					t.Fatalf("Level(%v) should panic naming the severity, got %v", s, r)
				}
			}()
			l.Level(s)
		}()
	}
	if l.Level(Warn) != l.Warn {
		t.Fatalf("Level(Warn) should return the Warn field")
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("%s should panic", name)
		}
	}()
	fn()
}

func TestClosedLoggerPanics(t *testing.T) {
	l, c := newCaptured(t, "Gone")
	warn := l.Warn
	l.Close()

	expectPanic(t, "Logger.Print", func() { l.Print("x") })
	expectPanic(t, "Logger.SetPriority", func() { l.SetPriority(Info) })
	expectPanic(t, "Logger.Close", func() { l.Close() })
	expectPanic(t, "Level.Log", func() { warn.Log("x") })
	expectPanic(t, "Level.Enabled", func() { warn.Enabled() })
	expectPanic(t, "Level.SetThrows", func() { warn.SetThrows(true) })
	if l.Warn != nil {
		t.Fatalf("children should be released on Close")
	}
	if len(c.msgs) != 0 {
		t.Fatalf("nothing should be logged after Close, got %q", c.msgs)
	}
}

func TestClosedLevelPanics(t *testing.T) {
	l, _ := newCaptured(t, "")
	info := l.Info
	info.Close()
	expectPanic(t, "closed Level.Log", func() { info.Log("x") })

	if err := l.Warn.Log("siblings still work"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSinkFallsBackToDefault(t *testing.T) {
	t.Cleanup(Reset)
	c := &capture{}
	SetDefaultSink(c.sink)

	l, err := New("Late", WithFlags(Flags{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	l.Warn.Log("via default")

	own := &capture{}
	l.SetSink(own.sink)
	l.Warn.Log("via own")
	l.SetSink(nil)
	l.Warn.Log("back to default")

	if len(c.msgs) != 2 || len(own.msgs) != 1 {
		t.Fatalf("default got %q, own got %q", c.msgs, own.msgs)
	}
}
