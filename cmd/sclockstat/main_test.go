package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hiroyaonoe/sclockstat/pkg/sclockstat"
)

const header = "Current Real Time,Local Server Time,Hardware Clock Time,Software Clock Time,Error,Remote Est Time"

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "10_5_2.txt"), strings.Join([]string{
		header,
		"1,2,3,4,0,50",
		"1,2,3,4,5,60",
		"1,2,3,4,-3,",
		"1,2,3,4,5,",
		"1,2,3,4,-3,",
	}, "\n")+"\n")
	writeFile(t, filepath.Join(dir, "notes.md"), "ignored\n")
	out := filepath.Join(t.TempDir(), "summary.csv")

	if code := run(slog.LevelError, false, dir, out, sclockstat.Options{}); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %q", lines)
	}
	if !strings.HasPrefix(lines[0], "Max Drift,Rapport Period,") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "10,5,2,1,1,5,4.6188021535170") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestRunFailure(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "10_5_2.txt"), "no header here\n")
	out := filepath.Join(t.TempDir(), "summary.csv")

	if code := run(slog.LevelError, false, dir, out, sclockstat.Options{}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}

func TestRunBadOutputPath(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing", "summary.csv")
	if code := run(slog.LevelError, false, t.TempDir(), out, sclockstat.Options{}); code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
