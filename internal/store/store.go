// Package store keeps projects and day logs as flat, append-only text files.
//
// Layout under the root directory:
//
//	Projects/<Label>.txt                     one task label per line
//	Projects/<Label>                         same, older files without suffix
//	Weeks/<Year> W<NN>/<DD-MM-YYYY>.txt      the day's log records
//
// A day log is a run of closed records, each ending in '\n', optionally
// followed by one open record that has no newline yet. The last byte of the
// file is therefore enough to tell whether an entry is running; see State.
package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/ramanasai/tlog/internal/calendar"
)

const (
	ProjectsDir = "Projects"
	WeeksDir    = "Weeks"

	projectExt = ".txt"
)

var (
	ErrProjectExists = errors.New("project already exists")
	ErrNoProject     = errors.New("project not found")
	ErrEmptyLabel    = errors.New("label is empty")
)

// Store is a flat-file store rooted at Root.
type Store struct {
	Root string
}

func New(root string) *Store {
	return &Store{Root: root}
}

func (s *Store) projectsPath() string {
	return filepath.Join(s.Root, ProjectsDir)
}

// ProjectPath returns the file backing project. A trailing ".txt" on the
// label is accepted and not doubled. When only a suffix-less file named
// after the label exists, that file is used.
func (s *Store) ProjectPath(project string) string {
	dir := s.projectsPath()
	if strings.HasSuffix(project, projectExt) {
		return filepath.Join(dir, project)
	}
	path := filepath.Join(dir, project+projectExt)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		bare := filepath.Join(dir, project)
		if fi, err := os.Stat(bare); err == nil && fi.Mode().IsRegular() {
			return bare
		}
	}
	return path
}

// DayPath returns the log file for the day of t.
func (s *Store) DayPath(t time.Time) string {
	return filepath.Join(s.Root, WeeksDir, calendar.WeekDir(t), calendar.DayFile(t))
}

// Init creates the projects folder, the week folder for t and an empty log
// file for the day if one does not exist yet. It returns the log path.
func (s *Store) Init(t time.Time) (string, error) {
	if err := os.MkdirAll(s.projectsPath(), 0o755); err != nil {
		return "", fmt.Errorf("create projects dir: %w", err)
	}
	day := s.DayPath(t)
	if err := os.MkdirAll(filepath.Dir(day), 0o755); err != nil {
		return "", fmt.Errorf("create week dir: %w", err)
	}
	f, err := os.OpenFile(day, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("create day log: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return day, nil
}

// Projects lists project labels, without the ".txt" suffix, sorted by name.
// "foo" and "foo.txt" are listed once. A missing projects folder is an empty
// list.
func (s *Store) Projects() ([]string, error) {
	entries, err := os.ReadDir(s.projectsPath())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read projects: %w", err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), projectExt))
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

// Tasks returns the task labels of project in file order. Duplicate lines
// are kept.
func (s *Store) Tasks(project string) ([]string, error) {
	b, err := os.ReadFile(s.ProjectPath(project))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoProject, project)
		}
		return nil, fmt.Errorf("read project %s: %w", project, err)
	}
	var tasks []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		tasks = append(tasks, line)
	}
	return tasks, nil
}

// CreateProject creates an empty project file. It fails with
// ErrProjectExists, leaving the existing file untouched, if the label is
// already taken.
func (s *Store) CreateProject(project string) error {
	project = strings.TrimSpace(project)
	if project == "" {
		return ErrEmptyLabel
	}
	if strings.ContainsAny(project, `/\`) {
		return fmt.Errorf("project %q: name may not contain path separators", project)
	}
	if strings.HasPrefix(project, ".") {
		return fmt.Errorf("project %q: name may not start with a dot", project)
	}
	if err := os.MkdirAll(s.projectsPath(), 0o755); err != nil {
		return fmt.Errorf("create projects dir: %w", err)
	}
	f, err := os.OpenFile(s.ProjectPath(project), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrProjectExists, project)
		}
		return fmt.Errorf("create project %s: %w", project, err)
	}
	return f.Close()
}

// AddTask appends task as a new line of project's file.
func (s *Store) AddTask(project, task string) error {
	task = strings.TrimSpace(task)
	if task == "" {
		return ErrEmptyLabel
	}
	f, err := os.OpenFile(s.ProjectPath(project), os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoProject, project)
		}
		return fmt.Errorf("open project %s: %w", project, err)
	}
	if _, err := fmt.Fprintln(f, task); err != nil {
		_ = f.Close()
		return fmt.Errorf("append task to %s: %w", project, err)
	}
	return f.Close()
}

// Append writes text to the end of the log at path, creating it and its
// week folder if needed.
func Append(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create week dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	if _, err := io.WriteString(f, text); err != nil {
		_ = f.Close()
		return fmt.Errorf("append log: %w", err)
	}
	return f.Close()
}
