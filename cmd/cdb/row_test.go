package main

import (
	"strings"
	"testing"
)

func TestRowAddListRemove(t *testing.T) {
	cfg := writeTestConfig(t)
	runCLI(t, "db", "init", "-c", cfg)

	out := runCLI(t, "row", "add", "-c", cfg,
		"--prefix", "TX", "--start", "5", "--end", "8",
		"--ref", "TD15", "--mode", "endpoint", "--offset", "3")
	if !strings.Contains(out, "Added row TX (4 positions)") {
		t.Errorf("row add output = %q", out)
	}

	out = runCLI(t, "row", "list", "-c", cfg)
	if !strings.Contains(out, "TX") || !strings.Contains(out, "ref=TD15") {
		t.Errorf("row list output = %q, want TX with TD15 ref", out)
	}

	out = runCLI(t, "row", "remove", "-c", cfg, "TX")
	if !strings.Contains(out, "Removed row TX") {
		t.Errorf("row remove output = %q", out)
	}
	out = runCLI(t, "row", "list", "-c", cfg)
	if !strings.Contains(out, "No custom rows") {
		t.Errorf("row list output = %q, want empty", out)
	}
}

func TestRowAdd_DuplicatePrefixFails(t *testing.T) {
	cfg := writeTestConfig(t)
	runCLI(t, "db", "init", "-c", cfg)

	err := runCLIErr(t, "row", "add", "-c", cfg, "--prefix", "TD", "--start", "1", "--end", "2")
	if !strings.Contains(err.Error(), "duplicate prefix") {
		t.Errorf("duplicate add err = %v, want duplicate prefix", err)
	}
}

func TestRowAdd_InvertedRangeFails(t *testing.T) {
	cfg := writeTestConfig(t)
	runCLI(t, "db", "init", "-c", cfg)

	err := runCLIErr(t, "row", "add", "-c", cfg, "--prefix", "TX", "--start", "8", "--end", "5")
	if !strings.Contains(err.Error(), "invalid custom row") {
		t.Errorf("inverted range err = %v, want invalid custom row", err)
	}
}

func TestRowAdd_BadModeFails(t *testing.T) {
	cfg := writeTestConfig(t)
	runCLI(t, "db", "init", "-c", cfg)

	err := runCLIErr(t, "row", "add", "-c", cfg, "--prefix", "TX", "--start", "1", "--end", "2", "--mode", "sideways")
	if !strings.Contains(err.Error(), "endpoint mode") {
		t.Errorf("bad mode err = %v, want endpoint mode error", err)
	}
}

func TestRowAdd_ResetsOverrides(t *testing.T) {
	cfg := writeTestConfig(t)
	runCLI(t, "db", "init", "-c", cfg)
	runCLI(t, "override", "set", "-c", cfg, "TA01", "TB01", "999")

	out := runCLI(t, "matrix", "show", "-c", cfg, "--series", "TA")
	if !strings.Contains(out, "999") {
		t.Fatalf("override missing from matrix before topology change: %q", out)
	}

	runCLI(t, "row", "add", "-c", cfg, "--prefix", "TX", "--start", "1", "--end", "2", "--ref", "Annex")

	// The rebuild reseeded the editable matrix; the old override is gone.
	out = runCLI(t, "matrix", "show", "-c", cfg, "--series", "TA")
	if strings.Contains(out, "999") {
		t.Errorf("override survived topology change: %q", out)
	}
}
