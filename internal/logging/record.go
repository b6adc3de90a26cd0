package logging

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// timeLayout renders wall-clock instants the way downstream log scrapers
// expect: fixed width, second precision, no zone offset.
const timeLayout = "2006-01-02 15:04:05"

// Info writes a formatted record to the primary log with the info markup.
// It is a no-op when no primary log is configured.
func (f *Facility) Info(category, format string, args ...any) {
	if f.log == nil {
		return
	}
	f.emit(f.log, f.infoMarkup, category, fmt.Sprintf(format, args...))
}

// Error writes a formatted record with the error markup. Errors are never
// suppressed: when the primary log is absent the record goes to the error
// stream instead.
func (f *Facility) Error(category, format string, args ...any) {
	f.emit(f.target(), f.errorMarkup, category, fmt.Sprintf(format, args...))
}

// Printf writes a formatted record when level does not exceed the facility's
// debug level (lower levels are emitted more readily). Like Error it falls
// back to the error stream when the primary log is absent.
func (f *Facility) Printf(level int, category, format string, args ...any) {
	if level > f.debugLevel {
		return
	}
	f.emit(f.target(), f.infoMarkup, category, fmt.Sprintf(format, args...))
}

// emit assembles one record and issues it as a single write so concurrent
// records never interleave. The write result is dropped on purpose: logging
// failures must not reach the caller.
func (f *Facility) emit(dst io.Writer, m markup, category, message string) {
	if dst == nil {
		return
	}

	var buf bytes.Buffer
	buf.Grow(len(m.prefix) + len(m.suffix) + len(category) + len(message) + 32)
	buf.WriteString(m.prefix)
	buf.WriteByte('[')
	buf.WriteString(time.Now().Format(timeLayout))
	buf.WriteString(" | ")
	buf.WriteString(category)
	buf.WriteByte(']')
	buf.WriteString(m.suffix)
	buf.WriteByte(' ')
	buf.WriteString(message)
	if !strings.HasSuffix(message, "\n") {
		buf.WriteByte('\n')
	}

	f.mu.Lock()
	_, _ = dst.Write(buf.Bytes())
	f.mu.Unlock()
}
