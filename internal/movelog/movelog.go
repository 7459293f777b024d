// Package movelog records task relocations for the commit message hook.
package movelog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath is where the commit-msg hook picks the log up, relative to the
// repository root.
const DefaultPath = ".git/hooks/tmp/task_log_commit_msg.txt"

// Entry is one relocation.
type Entry struct {
	From string `json:"from"`
	To   string `json:"to"`
	Task string `json:"task"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s -> %s: %s", e.From, e.To, e.Task)
}

// Log is an append-only list of entries owned by a single run.
type Log struct {
	entries []Entry
}

// Add appends entries.
func (l *Log) Add(entries ...Entry) {
	l.entries = append(l.entries, entries...)
}

// Entries returns a copy of the recorded entries.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// String renders one line per entry, each terminated by a newline.
func (l *Log) String() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile truncates path and writes the log to it, creating parent
// directories as needed. An empty log still truncates the file so a previous
// run's moves never leak into the next commit message.
func (l *Log) WriteFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(l.String()), 0o644); err != nil {
		return fmt.Errorf("write move log: %w", err)
	}
	return nil
}
