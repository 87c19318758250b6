package request

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kestrelwm/rpaperd/internal/colour"
	"github.com/kestrelwm/rpaperd/internal/config"
	"github.com/kestrelwm/rpaperd/internal/display"
	"github.com/kestrelwm/rpaperd/internal/imageops"
	"github.com/kestrelwm/rpaperd/internal/process"
)

func TestHandleMalformedRequest(t *testing.T) {
	h := NewHandler(config.New(), process.NewFakeRunner(), nil)
	reply := h.Handle("not-json")
	if reply.Error != "error while deserializing request" {
		t.Fatalf("got error %q", reply.Error)
	}
	if reply.StartTime == 0 || reply.EndTime == 0 {
		t.Fatal("expected timestamps to be populated even on parse failure")
	}
}

func TestHandleMissingImagePath(t *testing.T) {
	h := NewHandler(config.New(), process.NewFakeRunner(), nil)
	missing := filepath.Join(t.TempDir(), "nope.png")
	raw, _ := json.Marshal(Request{Image: &missing})
	reply := h.Handle(string(raw))
	if reply.Error != "path does not exists" {
		t.Fatalf("got error %q", reply.Error)
	}
}

func TestHandleGetConfigOnlyRequest(t *testing.T) {
	cfg := config.New()
	h := NewHandler(cfg, process.NewFakeRunner(), nil)
	raw, _ := json.Marshal(Request{GetConfig: true})
	reply := h.Handle(string(raw))
	if reply.Config == nil {
		t.Fatal("expected config to be attached")
	}
	if reply.Message != "ok" {
		t.Fatalf("expected ok message, got %q", reply.Message)
	}
}

func TestHandleCCacheComputesAndAttachesPalette(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "wall.png")
	if err := os.WriteFile(img, []byte("not a real image"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	h := NewHandler(cfg, process.NewFakeRunner(), nil)
	raw, _ := json.Marshal(Request{Image: &img, CCache: true, GetCCache: true})
	reply := h.Handle(string(raw))

	if len(reply.CCache) != 16 {
		t.Fatalf("expected 16 palette entries, got %d: %v", len(reply.CCache), reply.CCache)
	}
}

func TestMergeConfigOverridesDisplaysAndPreservesAbsentSubtrees(t *testing.T) {
	live := &config.Config{}
	req := Request{
		Displays: []RequestDisplay{{Name: "eDP-1", W: 1920, H: 1080}},
	}
	merged := MergeConfig(live, req)
	if len(merged.Displays) != 1 || merged.Displays[0].Name != "eDP-1" {
		t.Fatalf("unexpected displays: %+v", merged.Displays)
	}
	if merged.ImageOperations != nil {
		t.Fatal("expected ImageOperations to stay nil when live config never configured it")
	}
}

func TestMergeConfigMergesImageOperationsFieldByField(t *testing.T) {
	live := &config.Config{ImageOperations: &imageops.Operations{Contrast: 1, Brightness: 5}}
	contrast := 2.5
	req := Request{Contrast: &contrast, Invert: true}
	merged := MergeConfig(live, req)
	if merged.ImageOperations.Contrast != 2.5 {
		t.Fatalf("expected contrast override, got %+v", merged.ImageOperations)
	}
	if merged.ImageOperations.Brightness != 5 {
		t.Fatalf("expected brightness preserved from live config, got %+v", merged.ImageOperations)
	}
	if !merged.ImageOperations.Invert {
		t.Fatal("expected invert override to apply")
	}
}

func TestMergeConfigMergesRwalParamsViaRangeStrings(t *testing.T) {
	live := &config.Config{RwalParams: &colour.Params{ThumbW: 200, ThumbH: 200, ClampMin: 140.0 / 255, ClampMax: 170.0 / 255, AccentColor: 4, Colors: 7, Order: colour.Hue}}
	thumb := "64X64"
	clamp := "0.2X0.8"
	req := Request{RwalThumb: &thumb, RwalClamp: &clamp}
	merged := MergeConfig(live, req)
	if merged.RwalParams.ThumbW != 64 || merged.RwalParams.ThumbH != 64 {
		t.Fatalf("expected thumb override, got %+v", merged.RwalParams)
	}
	if merged.RwalParams.ClampMin != 0.2 || merged.RwalParams.ClampMax != 0.8 {
		t.Fatalf("expected clamp override, got %+v", merged.RwalParams)
	}
	if merged.RwalParams.AccentColor != 4 {
		t.Fatalf("expected accent preserved, got %+v", merged.RwalParams)
	}
}

func TestProcessImagesRespectsActionFlags(t *testing.T) {
	dir := t.TempDir()
	img := filepath.Join(dir, "wall.png")
	if err := os.WriteFile(img, []byte("not a real image"), 0o644); err != nil {
		t.Fatal(err)
	}
	set := "echo {image}"
	cfg := &config.Config{
		Displays:        []display.Display{{Name: "eDP-1", W: 10, H: 10}},
		ResizeAlgorithm: strPtr("Triangle"),
		SetCommand:      &set,
	}
	runner := process.NewFakeRunner()
	h := NewHandler(cfg, runner, nil)

	raw, _ := json.Marshal(Request{Image: &img, WSet: true})
	h.Handle(string(raw))

	if len(runner.SpawnCalls) == 0 {
		t.Fatal("expected w_set to spawn the wallpaper set command")
	}
}

func strPtr(s string) *string { return &s }
