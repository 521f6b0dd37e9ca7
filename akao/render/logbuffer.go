package render

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// LogEntry is a single captured log record.
type LogEntry struct {
	Time    time.Time
	Level   slog.Level
	Message string
}

// LogBuffer is a thread-safe ring of the most recent log entries. It collects
// logs while the terminal is owned by the viewer.
type LogBuffer struct {
	mutex   sync.RWMutex
	entries []LogEntry
	index   int
	count   int
}

// NewLogBuffer creates a buffer holding at most size entries.
func NewLogBuffer(size int) *LogBuffer {
	if size < 1 {
		size = 1
	}
	return &LogBuffer{entries: make([]LogEntry, size)}
}

// Add inserts an entry, overwriting the oldest when full.
func (lb *LogBuffer) Add(entry LogEntry) {
	lb.mutex.Lock()
	defer lb.mutex.Unlock()

	lb.entries[lb.index] = entry
	lb.index = (lb.index + 1) % len(lb.entries)
	if lb.count < len(lb.entries) {
		lb.count++
	}
}

// Recent returns up to maxCount entries, newest first. maxCount <= 0 returns all.
func (lb *LogBuffer) Recent(maxCount int) []LogEntry {
	lb.mutex.RLock()
	defer lb.mutex.RUnlock()

	count := lb.count
	if maxCount > 0 && maxCount < count {
		count = maxCount
	}

	result := make([]LogEntry, count)
	for i := 0; i < count; i++ {
		result[i] = lb.entries[(lb.index-1-i+len(lb.entries))%len(lb.entries)]
	}
	return result
}

// Latest returns the newest entry.
func (lb *LogBuffer) Latest() (LogEntry, bool) {
	recent := lb.Recent(1)
	if len(recent) == 0 {
		return LogEntry{}, false
	}
	return recent[0], true
}

// LogBufferHandler is a slog.Handler that writes records into a LogBuffer.
type LogBufferHandler struct {
	buffer *LogBuffer
	level  slog.Level
	attrs  []slog.Attr
}

// NewLogBufferHandler creates a handler capturing records at level and above.
func NewLogBufferHandler(buffer *LogBuffer, level slog.Level) *LogBufferHandler {
	return &LogBufferHandler{buffer: buffer, level: level}
}

func (h *LogBufferHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *LogBufferHandler) Handle(_ context.Context, record slog.Record) error {
	var sb strings.Builder
	sb.WriteString(record.Message)

	write := func(a slog.Attr) bool {
		fmt.Fprintf(&sb, " %s=%v", a.Key, a.Value)
		return true
	}
	for _, a := range h.attrs {
		write(a)
	}
	record.Attrs(write)

	h.buffer.Add(LogEntry{
		Time:    record.Time,
		Level:   record.Level,
		Message: sb.String(),
	})
	return nil
}

func (h *LogBufferHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LogBufferHandler{
		buffer: h.buffer,
		level:  h.level,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

// WithGroup is a no-op, groups are flattened.
func (h *LogBufferHandler) WithGroup(string) slog.Handler {
	return h
}

// FormatLogEntry formats an entry for a single status line.
func FormatLogEntry(entry LogEntry) string {
	var level string
	switch entry.Level {
	case slog.LevelDebug:
		level = "DBG"
	case slog.LevelInfo:
		level = "INF"
	case slog.LevelWarn:
		level = "WRN"
	case slog.LevelError:
		level = "ERR"
	default:
		level = "???"
	}
	return fmt.Sprintf("%s [%s] %s", entry.Time.Format("15:04:05"), level, entry.Message)
}
