package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kestrelwm/rpaperd/internal/colour"
)

func TestLoadFromStringParsesAllSections(t *testing.T) {
	raw := `{
		"displays": [{"name": "eDP-1", "w": 1920, "h": 1080, "x": 0, "y": 0}],
		"wall_command": "feh --bg-fill {image}",
		"resize_algorithm": "Lanczos3",
		"rwal": {"thumb_w": 100, "thumb_h": 100, "clamp_min": 100, "clamp_max": 200, "accent_color": 2, "rwal_colors": 6, "order_by": "sem"},
		"impg": {"contrast": 1.5, "brightness": 10, "huerotate": 90, "blur": 0.5, "invert": true, "flip_h": true, "flip_v": false}
	}`

	cfg, err := LoadFromString(raw)
	if err != nil {
		t.Fatalf("LoadFromString returned error: %v", err)
	}

	if len(cfg.Displays) != 1 || cfg.Displays[0].Name != "eDP-1" || cfg.Displays[0].W != 1920 {
		t.Fatalf("unexpected displays: %+v", cfg.Displays)
	}
	if cfg.SetCommand == nil || *cfg.SetCommand != "feh --bg-fill {image}" {
		t.Fatalf("unexpected set command: %v", cfg.SetCommand)
	}
	if cfg.ResizeAlgorithm == nil || *cfg.ResizeAlgorithm != "Lanczos3" {
		t.Fatalf("unexpected resize algorithm: %v", cfg.ResizeAlgorithm)
	}
	if cfg.RwalParams == nil || cfg.RwalParams.Order != colour.Semantic || cfg.RwalParams.AccentColor != 2 {
		t.Fatalf("unexpected rwal params: %+v", cfg.RwalParams)
	}
	if cfg.ImageOperations == nil || cfg.ImageOperations.Brightness != 10 || !cfg.ImageOperations.Invert {
		t.Fatalf("unexpected image operations: %+v", cfg.ImageOperations)
	}
}

func TestLoadFromStringLeavesAbsentSectionsNil(t *testing.T) {
	cfg, err := LoadFromString(`{}`)
	if err != nil {
		t.Fatalf("LoadFromString returned error: %v", err)
	}
	if cfg.Displays != nil || cfg.SetCommand != nil || cfg.RwalParams != nil || cfg.ImageOperations != nil {
		t.Fatalf("expected absent sections to stay nil, got %+v", cfg)
	}
}

func TestTemplatesFilterToExistingPaths(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "exists.tmpl")
	if err := os.WriteFile(existing, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	raw := `{"templates": ["` + existing + `", "` + filepath.Join(dir, "missing.tmpl") + `"]}`
	cfg, err := LoadFromString(raw)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Templates) != 1 || cfg.Templates[0] != existing {
		t.Fatalf("expected only the existing template to survive, got %v", cfg.Templates)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cmd := "echo hi"
	cfg := &Config{SetCommand: &cmd, Templates: []string{"a"}}
	clone := cfg.Clone()
	*clone.SetCommand = "changed"
	clone.Templates[0] = "b"

	if *cfg.SetCommand != "echo hi" || cfg.Templates[0] != "a" {
		t.Fatal("expected Clone to produce an independent copy")
	}
}

func TestWatchReportsErrorForMissingFile(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	changed := make(chan string, 1)
	if err := Watch(ctx, filepath.Join(t.TempDir(), "missing.json"), changed); err == nil {
		t.Fatal("expected Watch to report an error for an unreadable config file")
	}
}

func TestWatchDirectoriesCreatesMissingDirs(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "newdir")

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan DirEvent, 8)
	go WatchDirectories(ctx, []string{target}, events)

	select {
	case ev := <-events:
		if ev.Dir != target || !ev.Created {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for directory creation event")
	}
	cancel()

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
}
