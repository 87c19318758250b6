package template

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kestrelwm/rpaperd/internal/process"
)

func write16Palette() []string {
	hex := make([]string, 16)
	for i := range hex {
		hex[i] = "#102030"
	}
	return hex
}

func TestNewRejectsMissingPath(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing.tmpl")); err == nil {
		t.Fatal("expected error for missing template file")
	}
}

func TestApplyWritesConfigAndRunsCommands(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.conf")
	tmplPath := filepath.Join(dir, "theme.tmpl")

	raw := "Path(" + out + ")\n" +
		"Format(#{HEX})\n" +
		"ExecBefore(echo before)\n" +
		"ExecAfter(echo after)\n" +
		"Color(@bg, 0)\n" +
		"[config]\n" +
		"bg = @bg\n"

	if err := os.WriteFile(tmplPath, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	tmpl, err := New(tmplPath)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	runner := process.NewFakeRunner()
	if err := tmpl.Apply(context.Background(), write16Palette(), runner); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("expected output file written: %v", err)
	}
	if string(data) != "bg = #102030\n" {
		t.Fatalf("unexpected rendered config: %q", data)
	}
	if len(runner.RunCalls) != 1 || runner.RunCalls[0] != "echo before" {
		t.Fatalf("expected ExecBefore to run synchronously, got %v", runner.RunCalls)
	}
	if len(runner.SpawnCalls) != 1 || runner.SpawnCalls[0] != "echo after" {
		t.Fatalf("expected ExecAfter to spawn, got %v", runner.SpawnCalls)
	}
}

func TestApplyBrightnessVariantsExpand(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.conf")
	tmplPath := filepath.Join(dir, "theme.tmpl")

	raw := "Path(" + out + ")\n" +
		"Format(#{HEX})\n" +
		"Color(@c{br}, 0)\n" +
		"[config]\n" +
		"lr1 = @cLR1\n" +
		"dr1 = @cDR1\n" +
		"base = @c\n"

	if err := os.WriteFile(tmplPath, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	tmpl, err := New(tmplPath)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	runner := process.NewFakeRunner()
	if err := tmpl.Apply(context.Background(), write16Palette(), runner); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	// All three placeholders should have been substituted away.
	content := string(data)
	if content != "lr1 = #1A2A3A\ndr1 = #061626\nbase = #102030\n" {
		t.Fatalf("expected {br} variants to be substituted, got %q", content)
	}
}
