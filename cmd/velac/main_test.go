package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestColorizeNoneLeavesTextUnchanged(t *testing.T) {
	got := colorize(colorNone, "E001", "boom")
	if got != "boom" {
		t.Errorf("colorize(colorNone, ...) = %q, want unchanged text", got)
	}
}

func TestColorizeErrorCodeUsesRed(t *testing.T) {
	got := colorize(colorBasic, "E001", "boom")
	if got != ansiRed+"boom"+ansiReset {
		t.Errorf("colorize for an E-code should wrap in red, got %q", got)
	}
}

func TestColorizeInfoCodeUsesYellow(t *testing.T) {
	got := colorize(colorBasic, "I001", "fyi")
	if got != ansiYellow+"fyi"+ansiReset {
		t.Errorf("colorize for an I-code should wrap in yellow, got %q", got)
	}
}

func TestRunCompilesSimpleModuleToDisk(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "animals.json")
	outRoot := filepath.Join(dir, "out")
	src := `[{"kind": "defmodule", "fields": {"Name": {"kind": "aliases", "fields": {"Segments": ["Animals"]}}, "Body": []}}]`
	if err := os.WriteFile(srcPath, []byte(src), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfgPath := filepath.Join(dir, "velac.yaml")
	if err := os.WriteFile(cfgPath, []byte("root: "+outRoot+"\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	code := run([]string{"-c", cfgPath, srcPath})
	if code != 0 {
		t.Fatalf("run() exit code = %d, want 0", code)
	}

	out, err := os.ReadFile(filepath.Join(outRoot, "animals.js"))
	if err != nil {
		t.Fatalf("expected compiled output on disk: %v", err)
	}
	if len(out) == 0 {
		t.Errorf("expected non-empty compiled output")
	}
}

func TestRunWithNoArgsReturnsUsageError(t *testing.T) {
	if code := run(nil); code != 1 {
		t.Errorf("run(nil) = %d, want 1", code)
	}
}
