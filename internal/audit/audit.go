// Package audit maintains the append-only execution log: one
// timestamped text line per notable marketplace event (slot submitted,
// slot approved, booking created, launcher activity, session expiry).
// Writes are best-effort: a failing log write is reported to the
// process log and never aborts the operation that triggered it.
package audit

import (
    "fmt"
    "log"
    "os"
    "sync"
    "time"
)

// timeLayout matches the line format consumers of execution.log expect:
// a local timestamp with microseconds, a pipe, then the message.
const timeLayout = "2006-01-02 15:04:05.000000"

// Logger appends events to a single log file. It is safe for
// concurrent use; a mutex serializes appends so lines never interleave.
type Logger struct {
    mu   sync.Mutex
    path string
    now  func() time.Time
}

// New returns a Logger appending to the file at path. The file is
// created on first write; nothing is opened eagerly so a missing
// directory only surfaces when an event is actually logged.
func New(path string) *Logger {
    return &Logger{path: path, now: time.Now}
}

// Event appends a single formatted line to the log file. Failures are
// reported via the standard logger and swallowed: audit durability is
// best-effort and must not fail the triggering operation.
func (l *Logger) Event(format string, args ...interface{}) {
    msg := fmt.Sprintf(format, args...)
    line := l.now().Format(timeLayout) + " | " + msg + "\n"

    l.mu.Lock()
    defer l.mu.Unlock()
    f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        log.Printf("audit: open %s: %v", l.path, err)
        return
    }
    defer f.Close()
    if _, err := f.WriteString(line); err != nil {
        log.Printf("audit: write %s: %v", l.path, err)
    }
}

// Read returns the entire log file contents for the on-demand log
// view. A log that does not exist yet reads as empty, not as an error.
func (l *Logger) Read() (string, error) {
    l.mu.Lock()
    defer l.mu.Unlock()
    data, err := os.ReadFile(l.path)
    if os.IsNotExist(err) {
        return "", nil
    }
    if err != nil {
        return "", fmt.Errorf("read audit log: %w", err)
    }
    return string(data), nil
}
