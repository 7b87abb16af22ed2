package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hodevin/decaf/internal/driver"
	"github.com/hodevin/decaf/internal/source"
	"github.com/hodevin/decaf/internal/ui"
)

// runCheckDirWithUI runs CheckDir under a Bubble Tea progress display,
// feeding it decafc check's own per-file CheckEvents rather than polling.
func runCheckDirWithUI(ctx context.Context, title string, dir string, maxDiagnostics, jobs int, cache *driver.DiagnosticCache) (*source.FileSet, []driver.CheckResult, error) {
	paths, err := driver.ListDecafFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan driver.CheckEvent, 256)
	type outcome struct {
		fs      *source.FileSet
		results []driver.CheckResult
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		fs, results, runErr := driver.CheckDirCached(ctx, dir, maxDiagnostics, jobs, events, cache)
		outcomeCh <- outcome{fs: fs, results: results, err: runErr}
	}()

	model := ui.NewProgressModel(title, paths, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	out := <-outcomeCh
	if uiErr != nil {
		return out.fs, out.results, uiErr
	}
	return out.fs, out.results, out.err
}
