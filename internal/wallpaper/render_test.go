package wallpaper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kestrelwm/rpaperd/internal/display"
	"github.com/kestrelwm/rpaperd/internal/imageops"
	"github.com/kestrelwm/rpaperd/internal/process"
)

func renderOpts(t *testing.T) RenderOptions {
	t.Helper()
	dir := t.TempDir()
	return RenderOptions{
		ImagePath: filepath.Join(dir, "missing.png"),
		Displays: []display.Display{
			{Name: "eDP-1", W: 100, H: 50, X: 0, Y: 0},
			{Name: "HDMI-1", W: 80, H: 40, X: 100, Y: 0},
		},
		Operations:    imageops.Operations{},
		ResizeAlgo:    imageops.Triangle,
		WallpapersDir: filepath.Join(dir, "wallpapers"),
	}
}

func TestRenderBaseFallsBackOnMissingImage(t *testing.T) {
	base := RenderBase(renderOpts(t))
	b := base.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		t.Fatalf("expected a non-empty fallback canvas, got %v", b)
	}
}

func TestCacheWallpaperWritesOneFilePerDisplay(t *testing.T) {
	opts := renderOpts(t)
	if err := CacheWallpaper(nil, opts); err != nil {
		t.Fatalf("CacheWallpaper returned error: %v", err)
	}
	if !CachedPathsExist(opts.Displays, opts.Operations, opts.ImagePath, opts.WallpapersDir) {
		t.Fatal("expected every display's cache path to exist after CacheWallpaper")
	}

	entries, err := os.ReadDir(opts.WallpapersDir)
	if err != nil {
		t.Fatalf("reading wallpapers dir: %v", err)
	}
	if len(entries) != len(opts.Displays) {
		t.Fatalf("expected %d cached files, got %d", len(opts.Displays), len(entries))
	}
}

func TestSetWallpaperCachesWhenMissingThenSpawnsPerDisplay(t *testing.T) {
	opts := SetOptions{
		RenderOptions: renderOpts(t),
		SetCommand:    "echo {image} {default_image} {display}",
	}
	runner := process.NewFakeRunner()

	if err := SetWallpaper(nil, runner, opts); err != nil {
		t.Fatalf("SetWallpaper returned error: %v", err)
	}
	if len(runner.SpawnCalls) != len(opts.Displays) {
		t.Fatalf("expected %d spawn calls, got %d", len(opts.Displays), len(runner.SpawnCalls))
	}
	if !CachedPathsExist(opts.Displays, opts.Operations, opts.ImagePath, opts.WallpapersDir) {
		t.Fatal("expected SetWallpaper to have cached the wallpaper as a side effect")
	}
}

func TestSetWallpaperNoopWithoutCommand(t *testing.T) {
	opts := SetOptions{RenderOptions: renderOpts(t)}
	runner := process.NewFakeRunner()
	if err := SetWallpaper(nil, runner, opts); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(runner.SpawnCalls) != 0 {
		t.Fatal("expected no spawn calls when SetCommand is empty")
	}
}
