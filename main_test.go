package main

import (
	"bytes"
	"io"
	"log"
	"os"
	"strings"
	"testing"
)

func TestRun_DumpPrintsLevel(t *testing.T) {
	// Arrange
	var out bytes.Buffer

	// Act
	err := run([]string{"-mode", "dump", "-seed", "7"}, &out)

	// Assert
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if !strings.Contains(out.String(), "seed 7,") || !strings.Contains(out.String(), "rooms") {
		t.Errorf("dump output lacks the summary:\n%s", out.String())
	}
}

func TestRun_UnknownModeIsAnError(t *testing.T) {
	if err := run([]string{"-mode", "bogus", "-seed", "1"}, io.Discard); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestRun_DebugLogClosedOnError(t *testing.T) {
	// Arrange
	wd, wdErr := os.Getwd()
	if wdErr != nil {
		t.Fatalf("getwd: %v", wdErr)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	defer log.SetOutput(os.Stderr)

	// Act
	err := run([]string{"-mode", "dump", "-debug", "-config", "missing.json"}, io.Discard)

	// Assert
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
	if log.Writer() != os.Stderr {
		t.Errorf("standard logger still points at the debug log")
	}
	contents, readErr := os.ReadFile("delve.log")
	if readErr != nil {
		t.Fatalf("reading delve.log: %v", readErr)
	}
	if !strings.Contains(string(contents), "missing.json") {
		t.Errorf("delve.log lacks the failure, got %q", contents)
	}
}
