package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kestrelwm/rpaperd/internal/colour"
	"github.com/kestrelwm/rpaperd/internal/display"
	"github.com/kestrelwm/rpaperd/internal/imageops"
	"github.com/kestrelwm/rpaperd/internal/pathutil"
)

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return LoadFromString(string(data))
}

// LoadFromString parses raw JSON text into a Config, matching the source's
// read_from_string entry point. Load and the daemon's config watcher use it.
func LoadFromString(raw string) (*Config, error) {
	var tree map[string]any
	if err := json.Unmarshal([]byte(raw), &tree); err != nil {
		return nil, fmt.Errorf("config: parsing json: %w", err)
	}

	cfg := &Config{}
	cfg.Displays = readDisplays(tree)
	cfg.Templates = readTemplates(tree)
	cfg.SetCommand = readString(tree, "wall_command")
	cfg.ResizeAlgorithm = readString(tree, "resize_algorithm")
	cfg.LastCallFile = readExpandedString(tree, "last_call_file")
	cfg.RwalParams = readRwalParams(tree)
	cfg.ImageOperations = readImageOperations(tree)
	return cfg, nil
}

func readDisplays(tree map[string]any) []display.Display {
	raw, ok := tree["displays"].([]any)
	if !ok {
		return nil
	}
	displays := make([]display.Display, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		if name == "" {
			continue
		}
		displays = append(displays, display.Display{
			Name: name,
			W:    uint32(asNumber(m["w"])),
			H:    uint32(asNumber(m["h"])),
			X:    uint32(asNumber(m["x"])),
			Y:    uint32(asNumber(m["y"])),
		})
	}
	return displays
}

func readTemplates(tree map[string]any) []string {
	raw, ok := tree["templates"].([]any)
	if !ok {
		return nil
	}
	templates := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		expanded := pathutil.ExpandUser(s)
		if pathutil.Exists(expanded) {
			templates = append(templates, expanded)
		}
	}
	return templates
}

func readString(tree map[string]any, key string) *string {
	s, ok := tree[key].(string)
	if !ok {
		return nil
	}
	return &s
}

func readExpandedString(tree map[string]any, key string) *string {
	s, ok := tree[key].(string)
	if !ok {
		return nil
	}
	expanded := pathutil.ExpandUser(s)
	return &expanded
}

func readRwalParams(tree map[string]any) *colour.Params {
	rwal, ok := tree["rwal"].(map[string]any)
	if !ok {
		return nil
	}

	p := colour.DefaultParams()
	p.ThumbW = uint32(asNumberOr(rwal["thumb_w"], float64(p.ThumbW)))
	p.ThumbH = uint32(asNumberOr(rwal["thumb_h"], float64(p.ThumbH)))
	p.ClampMin = asNumberOr(rwal["clamp_min"], p.ClampMin)
	p.ClampMax = asNumberOr(rwal["clamp_max"], p.ClampMax)
	p.AccentColor = uint32(asNumberOr(rwal["accent_color"], float64(p.AccentColor)))
	p.Colors = uint32(asNumberOr(rwal["rwal_colors"], float64(p.Colors)))

	if orderStr, ok := rwal["order_by"].(string); ok {
		if order, ok := colour.ParseOrderBy(orderStr); ok {
			p.Order = order
		}
	}

	return &p
}

func readImageOperations(tree map[string]any) *imageops.Operations {
	impg, ok := tree["impg"].(map[string]any)
	if !ok {
		return nil
	}

	ops := imageops.Operations{
		Contrast:   asNumberOr(impg["contrast"], 0),
		Brightness: int32(asNumberOr(impg["brightness"], 0)),
		HueRotate:  int32(asNumberOr(impg["huerotate"], 0)),
		Blur:       asNumberOr(impg["blur"], 0),
		Invert:     asBoolOr(impg["invert"], false),
		FlipH:      asBoolOr(impg["flip_h"], false),
		FlipV:      asBoolOr(impg["flip_v"], false),
	}
	return &ops
}

func asNumber(v any) float64 {
	return asNumberOr(v, 0)
}

func asNumberOr(v any, fallback float64) float64 {
	n, ok := v.(float64)
	if !ok {
		return fallback
	}
	return n
}

func asBoolOr(v any, fallback bool) bool {
	b, ok := v.(bool)
	if !ok {
		return fallback
	}
	return b
}

// WellKnownPath joins a config-relative filename under the config
// directory, used by callers that need a sibling file next to config.json.
func WellKnownPath(name string) string {
	return filepath.Join(pathutil.ConfigDir(), name)
}
