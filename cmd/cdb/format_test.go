package main

import (
	"strings"
	"testing"

	"github.com/tinrooster/cabledb/internal/matrix"
	"github.com/tinrooster/cabledb/internal/topology"
)

func testSnapshot(t *testing.T) *matrix.Snapshot {
	t.Helper()
	topo, err := topology.New(nil)
	if err != nil {
		t.Fatalf("topology.New: %v", err)
	}
	snap, err := matrix.Build(topo)
	if err != nil {
		t.Fatalf("matrix.Build: %v", err)
	}
	return snap
}

func TestRenderMatrix_ClipsToWidth(t *testing.T) {
	snap := testSnapshot(t)
	var b strings.Builder
	renderMatrix(&b, snap, "", 60) // room for 9 columns

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	// Header, one line per position, and the clip notice.
	if len(lines) != len(snap.Positions)+2 {
		t.Fatalf("rendered %d lines, want %d", len(lines), len(snap.Positions)+2)
	}
	if len(lines[0]) > 60 {
		t.Errorf("header is %d chars, want <= 60", len(lines[0]))
	}
	if !strings.Contains(lines[len(lines)-1], "more columns") {
		t.Errorf("missing clip notice: %q", lines[len(lines)-1])
	}
}

func TestRenderMatrix_SeriesFilter(t *testing.T) {
	snap := testSnapshot(t)
	var b strings.Builder
	renderMatrix(&b, snap, "TE", 1000)

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	// Header plus the 13 TE rows.
	if len(lines) != 14 {
		t.Fatalf("rendered %d lines, want 14", len(lines))
	}
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line, "TE") {
			t.Errorf("non-TE row in filtered output: %q", line)
		}
	}
}

func TestRenderMatrix_UnknownSeries(t *testing.T) {
	snap := testSnapshot(t)
	var b strings.Builder
	renderMatrix(&b, snap, "ZZ", 1000)
	if !strings.Contains(b.String(), `no positions match series "ZZ"`) {
		t.Errorf("output = %q, want no-match notice", b.String())
	}
}
