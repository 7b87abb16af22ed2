package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hodevin/decaf/internal/driver"
)

func TestCheckDirProgressReportsQueuedRunningDone(t *testing.T) {
	dir := t.TempDir()
	good := "class Program {\n  void main() {\n    Print(1);\n  }\n}\n"
	bad := "class Program {\n  void main() {\n    undeclared_variable;\n  }\n}\n"
	if err := os.WriteFile(filepath.Join(dir, "good.decaf"), []byte(good), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bad.decaf"), []byte(bad), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	events := make(chan driver.CheckEvent, 64)
	_, results, err := driver.CheckDirProgress(context.Background(), dir, 50, 2, events)
	if err != nil {
		t.Fatalf("CheckDirProgress failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	seen := map[string][]driver.CheckStatus{}
	for ev := range events {
		seen[ev.Path] = append(seen[ev.Path], ev.Status)
	}

	for _, r := range results {
		statuses, ok := seen[r.Path]
		if !ok {
			t.Fatalf("expected at least one event for %q", r.Path)
		}
		if statuses[0] != driver.CheckQueued {
			t.Fatalf("expected %q's first event to be CheckQueued, got %v", r.Path, statuses[0])
		}
		last := statuses[len(statuses)-1]
		if last != driver.CheckDone && last != driver.CheckError {
			t.Fatalf("expected %q's last event to be Done or Error, got %v", r.Path, last)
		}
	}
}

func TestListDecafFilesSortsAndFiltersByExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.decaf", "a.decaf", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(""), 0o600); err != nil {
			t.Fatalf("failed to write fixture %q: %v", name, err)
		}
	}

	files, err := driver.ListDecafFiles(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 .decaf files, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "a.decaf" || filepath.Base(files[1]) != "b.decaf" {
		t.Fatalf("expected sorted order [a.decaf b.decaf], got %v", files)
	}
}
