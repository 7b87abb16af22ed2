package ui

import (
	"strings"
	"testing"

	"github.com/hodevin/decaf/internal/driver"
)

func TestApplyEventUpdatesStatusAndPercent(t *testing.T) {
	events := make(chan driver.CheckEvent)
	m := NewProgressModel("checking", []string{"a.decaf", "b.decaf"}, events).(*progressModel)

	m.applyEvent(driver.CheckEvent{Path: "a.decaf", Status: driver.CheckRunning})
	if m.items[m.index["a.decaf"]].status != "checking" {
		t.Fatalf("expected a.decaf to be checking, got %q", m.items[0].status)
	}

	m.applyEvent(driver.CheckEvent{Path: "a.decaf", Status: driver.CheckDone})
	m.applyEvent(driver.CheckEvent{Path: "b.decaf", Status: driver.CheckError})

	if m.items[m.index["a.decaf"]].status != "done" {
		t.Fatalf("expected a.decaf to be done, got %q", m.items[m.index["a.decaf"]].status)
	}
	if m.items[m.index["b.decaf"]].status != "error" {
		t.Fatalf("expected b.decaf to be error, got %q", m.items[m.index["b.decaf"]].status)
	}
}

func TestApplyEventIgnoresUnknownPath(t *testing.T) {
	events := make(chan driver.CheckEvent)
	m := NewProgressModel("checking", []string{"a.decaf"}, events).(*progressModel)

	cmd := m.applyEvent(driver.CheckEvent{Path: "missing.decaf", Status: driver.CheckDone})
	if cmd != nil {
		t.Fatalf("expected no command for an unknown path")
	}
}

func TestProgressViewListsEachFile(t *testing.T) {
	events := make(chan driver.CheckEvent)
	m := NewProgressModel("checking", []string{"a.decaf", "b.decaf"}, events).(*progressModel)

	view := m.View()
	if !strings.Contains(view, "a.decaf") || !strings.Contains(view, "b.decaf") {
		t.Fatalf("expected view to list both files, got:\n%s", view)
	}
}

func TestTruncateShortensLongNames(t *testing.T) {
	got := truncate("a-very-long-file-name.decaf", 10)
	if len(got) > 10 {
		t.Fatalf("expected truncated string within width 10, got %q (len %d)", got, len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncation ellipsis, got %q", got)
	}
}
