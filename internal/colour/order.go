package colour

import (
	"sort"
	"strings"
)

// OrderBy selects how the six cluster centroids are arranged into the
// final palette slots.
type OrderBy int

const (
	Hue OrderBy = iota
	Saturation
	Brightness
	Semantic
)

// ParseOrderBy maps a config tag to an OrderBy, matching the source's
// case-insensitive single-letter and word forms.
func ParseOrderBy(s string) (OrderBy, bool) {
	switch strings.ToLower(s) {
	case "h", "hue":
		return Hue, true
	case "s", "saturation":
		return Saturation, true
	case "v", "b", "brightness":
		return Brightness, true
	case "sem", "semantic":
		return Semantic, true
	default:
		return 0, false
	}
}

// Tag returns the canonical short tag used in cache fingerprints and
// config serialization ("h", "s", "v", "sem").
func (o OrderBy) Tag() string {
	switch o {
	case Hue:
		return "h"
	case Saturation:
		return "s"
	case Brightness:
		return "v"
	case Semantic:
		return "sem"
	default:
		return "h"
	}
}

// semanticTargetHues is the fixed greedy-assignment target list: each
// target hue claims the closest remaining unused centroid, in this order.
var semanticTargetHues = [6]float64{360, 120, 60, 240, 300, 180}

// OrderPalette arranges hsv (expected length 6) according to order.
func OrderPalette(hsv []HSV, order OrderBy) []HSV {
	out := make([]HSV, len(hsv))
	copy(out, hsv)

	switch order {
	case Hue:
		sort.SliceStable(out, func(i, j int) bool { return out[i].H < out[j].H })
	case Saturation:
		sort.SliceStable(out, func(i, j int) bool { return out[i].S < out[j].S })
	case Brightness:
		sort.SliceStable(out, func(i, j int) bool { return out[i].V < out[j].V })
	case Semantic:
		out = orderSemantic(out)
	}
	return out
}

func orderSemantic(hsv []HSV) []HSV {
	used := make(map[int]bool, len(hsv))
	result := make([]HSV, 0, len(semanticTargetHues))

	for _, target := range semanticTargetHues {
		closest := -1
		closestDiff := -1.0
		for i, c := range hsv {
			if used[i] {
				continue
			}
			diff := hueDistance(c.H, target)
			if closest == -1 || diff < closestDiff {
				closest = i
				closestDiff = diff
			}
		}
		if closest == -1 {
			break
		}
		used[closest] = true
		result = append(result, hsv[closest])
	}
	return result
}

// hueDistance returns the circular distance between two hues on the
// 0-360 wheel, so a target near 360 still matches a centroid near 0.
func hueDistance(a, target float64) float64 {
	d := a - target
	if d < 0 {
		d = -d
	}
	if d > 360-d {
		return 360 - d
	}
	return d
}
