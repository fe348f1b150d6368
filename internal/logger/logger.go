package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogFilePath is the default log file, relative to the working directory.
const LogFilePath = "logs/square.txt"

// Logger keeps timestamped lines in memory, appends them to a file and mirrors them to an
// optional writer (stderr for the game).
type Logger struct {
	mu     sync.Mutex
	path   string
	mirror io.Writer
	now    func() time.Time
	lines  []string
}

// New returns a Logger writing to path and mirroring to w (nil disables mirroring).
// The directory of path is created if needed; an empty path keeps lines in memory only.
func New(path string, w io.Writer) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, mirror: w, now: time.Now, lines: make([]string, 0)}
}

// Log records one line prefixed with [timestamp].
func (l *Logger) Log(line string) {
	stamped := "[" + l.now().Format("2006-01-02 15:04:05") + "] " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if l.mirror != nil {
		_, _ = io.WriteString(l.mirror, stamped+"\n")
	}
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

// Logf formats and records one line.
func (l *Logger) Logf(format string, args ...any) {
	l.Log(fmt.Sprintf(format, args...))
}

// Lines returns a copy of all recorded lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
