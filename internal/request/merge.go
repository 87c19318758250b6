package request

import (
	"strconv"
	"strings"

	"github.com/kestrelwm/rpaperd/internal/colour"
	"github.com/kestrelwm/rpaperd/internal/config"
	"github.com/kestrelwm/rpaperd/internal/display"
	"github.com/kestrelwm/rpaperd/internal/imageops"
)

// MergeConfig produces a per-request configuration by cloning the live
// snapshot and overwriting each sub-struct with whichever Request fields
// are present. RwalParams and ImageOperations merge field-by-field from
// the existing value; if the live config lacks one of those subtrees
// entirely, the request cannot fabricate it.
func MergeConfig(live *config.Config, req Request) *config.Config {
	merged := live.Clone()
	if merged == nil {
		merged = config.New()
	}

	if req.Displays != nil {
		displays := make([]display.Display, len(req.Displays))
		for i, d := range req.Displays {
			displays[i] = display.Display{Name: d.Name, W: d.W, H: d.H, X: d.X, Y: d.Y}
		}
		merged.Displays = displays
	}
	if req.Templates != nil {
		merged.Templates = append([]string(nil), req.Templates...)
	}
	if req.SetCommand != nil {
		merged.SetCommand = req.SetCommand
	}
	if req.ResizeAlg != nil {
		merged.ResizeAlgorithm = req.ResizeAlg
	}

	if merged.RwalParams != nil {
		params := *merged.RwalParams
		if req.RwalThumb != nil {
			if w, h, ok := parsePair(*req.RwalThumb, "X"); ok {
				params.ThumbW, params.ThumbH = uint32(w), uint32(h)
			}
		}
		if req.RwalClamp != nil {
			if lo, hi, ok := parseFloatPair(*req.RwalClamp, "X"); ok {
				params.ClampMin, params.ClampMax = lo, hi
			}
		}
		if req.RwalAccent != nil {
			params.AccentColor = *req.RwalAccent
		}
		if req.RwalCount != nil {
			params.Colors = *req.RwalCount
		}
		if req.RwalOrder != nil {
			if order, ok := colour.ParseOrderBy(*req.RwalOrder); ok {
				params.Order = order
			}
		}
		merged.RwalParams = &params
	}

	if merged.ImageOperations != nil {
		ops := *merged.ImageOperations
		if req.Contrast != nil {
			ops.Contrast = *req.Contrast
		}
		if req.Brightness != nil {
			ops.Brightness = *req.Brightness
		}
		if req.Hue != nil {
			ops.HueRotate = *req.Hue
		}
		if req.Blur != nil {
			ops.Blur = *req.Blur
		}
		if req.Invert {
			ops.Invert = true
		}
		if req.FlipH {
			ops.FlipH = true
		}
		if req.FlipV {
			ops.FlipV = true
		}
		merged.ImageOperations = &ops
	}

	return merged
}

func parsePair(s, sep string) (float64, float64, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.ParseFloat(parts[0], 64)
	b, errB := strconv.ParseFloat(parts[1], 64)
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}

func parseFloatPair(s, sep string) (float64, float64, bool) {
	return parsePair(s, sep)
}

// operationsOrZero returns the merged config's ImageOperations, or the
// zero value (identity) if the live config never configured any.
func operationsOrZero(c *config.Config) imageops.Operations {
	if c.ImageOperations == nil {
		return imageops.Operations{}
	}
	return *c.ImageOperations
}

// paramsOrDefault returns the merged config's RwalParams, or the package
// default if the live config never configured any.
func paramsOrDefault(c *config.Config) colour.Params {
	if c.RwalParams == nil {
		return colour.DefaultParams()
	}
	return *c.RwalParams
}
