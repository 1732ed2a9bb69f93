// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// EnvLevel names the environment variable holding the log level.
const EnvLevel = "XMLDIFF_LOG"

const tracePrefix = "TRACE: "

var (
	traceEnabled bool

	levels = map[string]log.Level{
		"trace": log.DebugLevel,
		"debug": log.DebugLevel,
		"info":  log.InfoLevel,
		"warn":  log.WarnLevel,
		"error": log.ErrorLevel,
		"fatal": log.FatalLevel,
	}

	letters = map[log.Level]string{
		log.DebugLevel: "D",
		log.InfoLevel:  "I",
		log.WarnLevel:  "W",
		log.ErrorLevel: "E",
		log.FatalLevel: "F",
	}
)

// InitLogger installs the Handler on apex/log and sets the level from
// XMLDIFF_LOG. Unknown or empty values mean "error".
func InitLogger() {
	name := strings.ToLower(strings.TrimSpace(os.Getenv(EnvLevel)))
	level, ok := levels[name]
	if !ok {
		name, level = "error", log.ErrorLevel
	}
	traceEnabled = name == "trace"

	log.SetHandler(NewHandler(os.Stdout))
	log.SetLevel(level)
}

// Handler writes one line per entry: timestamp, a one-letter level and the
// message. Fields are appended as key=value pairs in the order apex sorts them.
type Handler struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewHandler returns a Handler writing to w.
func NewHandler(w io.Writer) *Handler {
	return &Handler{w: w, now: time.Now}
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	level := letters[e.Level]
	if level == "" {
		level = "?"
	}

	message := e.Message
	if rest, ok := strings.CutPrefix(message, tracePrefix); ok {
		level, message = "T", rest
	}

	var b strings.Builder
	b.WriteString(h.now().Format("2006-01-02 15:04:05"))
	b.WriteString(" ")
	b.WriteString(level)
	b.WriteString(" ")
	b.WriteString(message)
	for _, f := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", f, e.Fields.Get(f))
	}
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

// Tracef logs below Debug. It is only emitted when XMLDIFF_LOG=trace.
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.Debug(tracePrefix + fmt.Sprintf(format, args...))
	}
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Warnf logs at Warn level.
func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry carrying err.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}

// WithField returns an entry carrying a single field.
func WithField(key string, value interface{}) *log.Entry {
	return log.WithField(key, value)
}
