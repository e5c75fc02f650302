package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultPath is the game log file, relative to the working directory.
const DefaultPath = "logs/game.txt"

const timeLayout = "2006-01-02 15:04:05"

// Logger stores lines in memory and appends them to a file on disk.
// An empty path keeps lines in memory only.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
	now   func() time.Time
}

// New returns a Logger writing to path and makes sure its directory exists.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, lines: make([]string, 0), now: time.Now}
}

// Log appends a line prefixed with [timestamp]. File errors are ignored; the
// in-memory copy is always kept.
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format(timeLayout) + "] " + line

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	l.mu.Unlock()

	if l.path == "" {
		return
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Infof logs a formatted INFO line.
func (l *Logger) Infof(format string, args ...any) {
	l.Log("INFO " + fmt.Sprintf(format, args...))
}

// Errorf logs a formatted ERROR line.
func (l *Logger) Errorf(format string, args ...any) {
	l.Log("ERROR " + fmt.Sprintf(format, args...))
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Tail returns a copy of the last n lines, or all of them if there are fewer.
func (l *Logger) Tail(n int) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if n > len(l.lines) {
		n = len(l.lines)
	}
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	copy(out, l.lines[len(l.lines)-n:])
	return out
}

// Clip shortens line to at most limit runes, replacing the tail with "..."
// when it does not fit. Cuts never split a multi-byte character.
func Clip(line string, limit int) string {
	if utf8.RuneCountInString(line) <= limit {
		return line
	}
	keep := max(limit-3, 0)
	n := 0
	for i := range line {
		if n == keep {
			return line[:i] + "..."
		}
		n++
	}
	return line + "..."
}
