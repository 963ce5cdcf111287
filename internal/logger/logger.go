package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultPath is the log file, relative to the working directory.
const DefaultPath = "logs/orrery.txt"

// maxLines bounds the in-memory history shown on screen.
const maxLines = 200

// Level orders messages by severity.
type Level int

const (
	Info Level = iota
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Logger keeps recent lines in memory and appends every line to a file. Each entry is prefixed
// with [timestamp] LEVEL. The metrics server and the frame loop may log concurrently.
type Logger struct {
	mu    sync.Mutex
	lines []string
	path  string
	out   io.Writer
	now   func() time.Time
}

// New returns a Logger writing to path and ensures its directory exists. An empty path keeps
// lines in memory only.
func New(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path, now: time.Now}
}

// NewWriter returns a Logger that writes to w instead of a file.
func NewWriter(w io.Writer) *Logger {
	return &Logger{out: w, now: time.Now}
}

// Log appends an Info line.
func (l *Logger) Log(line string) {
	l.write(Info, line)
}

// Logf formats and appends a line at level.
func (l *Logger) Logf(level Level, format string, args ...interface{}) {
	l.write(level, fmt.Sprintf(format, args...))
}

// Warn appends a Warn line.
func (l *Logger) Warn(line string) {
	l.write(Warn, line)
}

// Error appends an Error line for err with context.
func (l *Logger) Error(context string, err error) {
	l.write(Error, context+": "+err.Error())
}

func (l *Logger) write(level Level, line string) {
	ts := l.now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + level.String() + " " + line

	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, stamped)
	if len(l.lines) > maxLines {
		l.lines = l.lines[len(l.lines)-maxLines:]
	}

	if l.out != nil {
		_, _ = io.WriteString(l.out, stamped+"\n")
		return
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

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Last returns the most recent line, or "".
func (l *Logger) Last() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.lines) == 0 {
		return ""
	}
	return l.lines[len(l.lines)-1]
}
