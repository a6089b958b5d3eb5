package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/ramanasai/tlog/internal/calendar"
)

// State is what the tail of a day log says about the running entry.
type State int

const (
	// Idle means every record in the log is closed (or there are none).
	Idle State = iota
	// Open means the last record has been started but not closed.
	Open
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Open:
		return "open"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// LogState inspects the last byte of the log at path. A missing or empty file
// is Idle, a trailing '\n' is Idle, anything else is Open.
//
// This only holds while every earlier write completed; a log truncated in
// the middle of a record is reported by the same rule and is not detected.
func LogState(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Idle, nil
		}
		return Idle, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Idle, fmt.Errorf("stat log: %w", err)
	}
	if info.Size() == 0 {
		return Idle, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return Idle, fmt.Errorf("read log tail: %w", err)
	}
	if last[0] == '\n' {
		return Idle, nil
	}
	return Open, nil
}

// Pending returns the unfinished record at the end of the log, e.g.
// "09:15 Alpha_Bug (", or "" when the log is Idle.
func Pending(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read log: %w", err)
	}
	if len(b) == 0 || b[len(b)-1] == '\n' {
		return "", nil
	}
	s := string(b)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	}
	return s, nil
}

// Label normalizes a project or task label for the log: a ".txt" suffix is
// dropped and spaces become hyphens.
func Label(s string) string {
	s = strings.TrimSuffix(strings.TrimSpace(s), projectExt)
	return strings.ReplaceAll(s, " ", "-")
}

// OpenRecord is the text that starts an entry: "HH:MM Project_Task (".
func OpenRecord(at time.Time, project, task string) string {
	return fmt.Sprintf("%s %s_%s (", calendar.Clock(at), Label(project), Label(task))
}

// CloseRecord is the text that finishes the open entry: "Note) HH:MM\n".
func CloseRecord(at time.Time, note string) string {
	return fmt.Sprintf("%s) %s\n", note, calendar.Clock(at))
}
