package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/ramanasai/tlog/internal/config"
	"github.com/ramanasai/tlog/internal/selector"
	"github.com/ramanasai/tlog/internal/session"
	"github.com/ramanasai/tlog/internal/store"
	"github.com/ramanasai/tlog/internal/ui"
)

type keysPrompter []selector.Key

func (k keysPrompter) Prompt(_ context.Context, m *selector.Machine, _ string) (selector.Outcome, error) {
	return m.PressAll(k), nil
}

func withKeys(t *testing.T, keys []selector.Key) {
	t.Helper()
	old := newPrompter
	newPrompter = func(config.Config) session.Prompter { return keysPrompter(keys) }
	t.Cleanup(func() { newPrompter = old })
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func todayLog(root string) string {
	return store.New(root).DayPath(time.Now())
}

func TestRootStartsAndClosesEntry(t *testing.T) {
	root := t.TempDir()

	enter := selector.Key{Type: selector.KeyEnter}
	keys := append(selector.Type("Alpha"), enter)
	keys = append(keys, selector.Type("Bug")...)
	withKeys(t, append(keys, enter))
	out, err := execute(t, "--root", root)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "started") {
		t.Fatalf("output = %q", out)
	}
	b, err := os.ReadFile(todayLog(root))
	if err != nil {
		t.Fatal(err)
	}
	if !regexp.MustCompile(`^\d\d:\d\d Alpha_Bug \($`).Match(b) {
		t.Fatalf("log = %q", b)
	}
	if p, _ := os.ReadFile(filepath.Join(root, "Projects", "Alpha.txt")); string(p) != "Bug\n" {
		t.Fatalf("project = %q", p)
	}

	withKeys(t, append(selector.Type("fixed it"), enter))
	out, err = execute(t, "-r", root)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	if !strings.Contains(out, "closed") {
		t.Fatalf("output = %q", out)
	}
	b, _ = os.ReadFile(todayLog(root))
	if !regexp.MustCompile(`^\d\d:\d\d Alpha_Bug \(fixed it\) \d\d:\d\d\n$`).Match(b) {
		t.Fatalf("log = %q", b)
	}
}

func TestRootCancel(t *testing.T) {
	root := t.TempDir()
	withKeys(t, []selector.Key{{Type: selector.KeyEscape}})
	out, err := execute(t, "--root", root)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "nothing recorded") {
		t.Fatalf("output = %q", out)
	}
}

func TestRootRejectsArgs(t *testing.T) {
	withKeys(t, nil)
	if _, err := execute(t, "--root", t.TempDir(), "extra"); err == nil {
		t.Fatal("expected error for positional args")
	}
}

func TestRootSetupFailure(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	withKeys(t, []selector.Key{{Type: selector.KeyEscape}})
	if _, err := execute(t, "--root", file); err == nil {
		t.Fatal("expected setup error")
	}
}

func TestDescribe(t *testing.T) {
	th := ui.PlainTheme
	tests := []struct {
		res  session.Result
		want string
	}{
		{session.Result{Outcome: selector.Outcome{Kind: selector.StartTimer}, Record: "09:15 Alpha_Bug ("}, "started 09:15 Alpha_Bug ("},
		{session.Result{Outcome: selector.Outcome{Kind: selector.CloseEntry}, Record: "done) 10:00\n"}, "closed done) 10:00"},
		{session.Result{Outcome: selector.Outcome{Kind: selector.Abandoned}}, "nothing recorded"},
		{session.Result{Outcome: selector.Outcome{Kind: selector.StartTimer}, WriteErr: errors.New("disk full")}, "not saved: disk full"},
	}
	for _, tt := range tests {
		if got := describe(tt.res, th); got != tt.want {
			t.Errorf("describe(%+v) = %q, want %q", tt.res.Outcome, got, tt.want)
		}
	}
}
