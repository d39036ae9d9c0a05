package logger

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// CallSite describes where a message was logged from. Any field may be empty.
type CallSite struct {
	File   string
	Line   int
	Type   string
	Method string
}

// Caller captures a call site from the stack. Caller(0) describes the
// function that called Caller. It returns nil when the stack is not that deep.
func Caller(skip int) *CallSite {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return nil
	}
	site := &CallSite{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		site.Type, site.Method = splitFuncName(fn.Name())
	}
	return site
}

// splitFuncName turns "example.com/pkg.(*Type).Method" into ("Type", "Method")
// and "example.com/pkg.Func" into ("", "Func").
func splitFuncName(full string) (typ, method string) {
	if i := strings.LastIndex(full, "/"); i >= 0 {
		full = full[i+1:]
	}
	_, rest, ok := strings.Cut(full, ".")
	if !ok {
		return "", full
	}
	if strings.HasPrefix(rest, "(") {
		if recv, m, ok := strings.Cut(rest, ")."); ok {
			return strings.TrimLeft(recv, "(*"), m
		}
	}
	return "", rest
}

// Tag renders the site as "Type.Method:line", dropping whatever is unknown,
// in the short form used for console caller tags.
func (c *CallSite) Tag() string {
	if c == nil {
		return ""
	}
	name := c.Method
	if c.Type != "" {
		name = c.Type + "." + c.Method
	}
	if name == "" {
		name = filepath.Base(c.File)
	}
	if name == "" || name == "." {
		name = "unknown"
	}
	if c.Line > 0 {
		return fmt.Sprintf("%s:%d", name, c.Line)
	}
	return name
}
