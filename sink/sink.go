// Package sink provides logger.Sink implementations for common destinations.
package sink

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mordilloSan/go-catlog/logger"
)

// Writer returns a sink writing one line per message to w. Writes are
// serialized, and a [Type.Method:line] tag is prepended when a call site is
// attached.
func Writer(w io.Writer) logger.Sink {
	var mu sync.Mutex
	return func(msg string, site *logger.CallSite) {
		mu.Lock()
		defer mu.Unlock()
		if site != nil {
			fmt.Fprintf(w, "[%s] %s\n", site.Tag(), msg)
			return
		}
		fmt.Fprintln(w, msg)
	}
}

// timestampWriter prepends a timestamp to each log line for file outputs.
type timestampWriter struct {
	w   io.Writer
	now func() time.Time
}

func (t *timestampWriter) Write(data []byte) (int, error) {
	ts := t.now().Format("2006/01/02 15:04:05 ")
	buf := make([]byte, 0, len(ts)+len(data))
	buf = append(buf, ts...)
	buf = append(buf, data...)
	if _, err := t.w.Write(buf); err != nil {
		return 0, err
	}
	return len(data), nil
}

// File appends timestamped lines to the file at path, creating it if needed.
// Close the returned io.Closer on shutdown.
func File(path string) (logger.Sink, io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to open log file %s", path)
	}
	return Writer(&timestampWriter{w: f, now: time.Now}), f, nil
}

// Multi fans each message out to every sink in order.
func Multi(sinks ...logger.Sink) logger.Sink {
	return func(msg string, site *logger.CallSite) {
		for _, s := range sinks {
			s(msg, site)
		}
	}
}

func siteFields(site *logger.CallSite) map[string]any {
	if site == nil {
		return nil
	}
	fields := map[string]any{}
	if site.File != "" {
		fields["file"] = site.File
	}
	if site.Line > 0 {
		fields["line"] = site.Line
	}
	if site.Type != "" {
		fields["type"] = site.Type
	}
	if site.Method != "" {
		fields["method"] = site.Method
	}
	return fields
}

// Logrus forwards messages to a logrus logger at level, with call site
// details as the fields file, line, type and method. Panic and Fatal are
// logged at Error so a message never exits the process.
func Logrus(l logrus.FieldLogger, level logrus.Level) logger.Sink {
	return func(msg string, site *logger.CallSite) {
		entry := l.WithFields(logrus.Fields(siteFields(site)))
		switch level {
		case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
			entry.Error(msg)
		case logrus.WarnLevel:
			entry.Warn(msg)
		case logrus.InfoLevel:
			entry.Info(msg)
		default:
			entry.Debug(msg)
		}
	}
}

// Zap forwards messages to a zap logger at level, with call site details as
// the fields file, line, type and method. Levels above Error (DPanic, Panic,
// Fatal) are logged at Error so a message never panics or exits the process.
func Zap(l *zap.Logger, level zapcore.Level) logger.Sink {
	if level > zapcore.ErrorLevel {
		level = zapcore.ErrorLevel
	}
	return func(msg string, site *logger.CallSite) {
		ce := l.Check(level, msg)
		if ce == nil {
			return
		}
		var fields []zap.Field
		if site != nil {
			if site.File != "" {
				fields = append(fields, zap.String("file", site.File))
			}
			if site.Line > 0 {
				fields = append(fields, zap.Int("line", site.Line))
			}
			if site.Type != "" {
				fields = append(fields, zap.String("type", site.Type))
			}
			if site.Method != "" {
				fields = append(fields, zap.String("method", site.Method))
			}
		}
		ce.Write(fields...)
	}
}
