// Package display describes the configured monitor layout and the
// cover-resize math used to fit one source image across all of them.
package display

import (
	"fmt"
	"strconv"
	"strings"
)

// Display is one configured monitor: its pixel size and its offset within
// the combined virtual canvas.
type Display struct {
	Name string
	W    uint32
	H    uint32
	X    uint32
	Y    uint32
}

// Parse parses the "name:w:h:x:y" string form of a display.
func Parse(s string) (Display, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 5 {
		return Display{}, fmt.Errorf("display: expected 5 colon-separated fields, got %d in %q", len(parts), s)
	}
	d := Display{Name: parts[0]}
	fields := []*uint32{&d.W, &d.H, &d.X, &d.Y}
	for i, f := range fields {
		v, err := strconv.ParseUint(parts[i+1], 10, 32)
		if err != nil {
			v = 0
		}
		*f = uint32(v)
	}
	return d, nil
}

// MaxWidth returns the smallest canvas width that contains every display's
// right edge.
func MaxWidth(displays []Display) uint32 {
	var max uint32
	for _, d := range displays {
		if d.W+d.X > max {
			max = d.W + d.X
		}
	}
	return max
}

// MaxHeight returns the smallest canvas height that contains every
// display's bottom edge.
func MaxHeight(displays []Display) uint32 {
	var max uint32
	for _, d := range displays {
		if d.H+d.Y > max {
			max = d.H + d.Y
		}
	}
	return max
}

// CoverSize computes the dimensions an image of size (imgW, imgH) must be
// scaled to so it covers a (maxW, maxH) canvas: first scale to the target
// width, then additionally scale by the height ratio if the result is
// still short of the target height. This multiplicative stretch-to-cover
// matches the original renderer exactly, including its rounding behavior
// (truncation via integer cast at each stage).
func CoverSize(imgW, imgH, maxW, maxH uint32) (uint32, uint32) {
	if imgW == 0 {
		return 0, 0
	}
	wDiff := float64(maxW) / float64(imgW)

	width := float64(imgW) * wDiff
	height := float64(imgH) * wDiff

	if height > 0 {
		hDiff := float64(maxH) / height
		if hDiff > 1.0 {
			width *= hDiff
			height *= hDiff
		}
	}

	return uint32(width), uint32(height)
}
