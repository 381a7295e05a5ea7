package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestConfig writes a sqlite-backed config into a temp dir and returns
// its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "cabledb.yaml")
	content := fmt.Sprintf("database:\n  driver: sqlite\n  path: %s\n", filepath.Join(dir, "test.sqlite"))
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return cfgPath
}

// runCLI executes the root command with args and returns combined output.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("cdb %s: %v\n%s", strings.Join(args, " "), err, buf.String())
	}
	return buf.String()
}

// runCLIErr executes the root command expecting failure.
func runCLIErr(t *testing.T, args ...string) error {
	t.Helper()
	root := newRootCmd()
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		t.Fatalf("cdb %s: expected error\n%s", strings.Join(args, " "), buf.String())
	}
	return err
}

func TestVersionCmd(t *testing.T) {
	out := runCLI(t, "version")
	if !strings.HasPrefix(out, "cdb ") {
		t.Errorf("version output = %q, want cdb prefix", out)
	}
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"version", "db", "distance", "matrix", "row", "override", "cable", "serve"} {
		found := false
		for _, c := range root.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestExecute_ReturnsExitCode(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"no-such-command"})
	if code := execute(root); code != 1 {
		t.Errorf("execute = %d, want 1", code)
	}
}
