package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    flappy.Mode
		wantErr bool
	}{
		{"classic", flappy.ModeClassic, false},
		{"shooting", flappy.ModeShooting, false},
		{"arcade", flappy.ModeUnset, true},
	}
	for _, tt := range tests {
		got, err := parseMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestPrintRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	var buf bytes.Buffer
	if err := printRuns(&buf, store, flappy.ModeClassic, 10); err != nil {
		t.Fatalf("printRuns() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("empty log output = %q", buf.String())
	}

	for _, score := range []int{4, 12} {
		if _, err := store.SaveRun(storage.Run{Mode: "classic", Score: score, Cause: "pipe"}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	buf.Reset()
	if err := printRuns(&buf, store, flappy.ModeClassic, 10); err != nil {
		t.Fatalf("printRuns() failed: %v", err)
	}
	out := buf.String()
	var first string
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "  1 ") {
			first = line
		}
	}
	if fields := strings.Fields(first); len(fields) < 2 || fields[1] != "12" {
		t.Errorf("best run should be ranked first:\n%s", out)
	}
	if !strings.Contains(out, "Runs: 2  Best: 12  Mean: 8.0") {
		t.Errorf("totals missing:\n%s", out)
	}
}
