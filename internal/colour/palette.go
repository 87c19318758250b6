package colour

import (
	"image"

	"github.com/kestrelwm/rpaperd/internal/imageops"
)

// Palette is the daemon's 16-slot color scheme: 8 distinct colors
// (background, 6 ordered centroids, foreground) followed by a verbatim
// duplicate of those 8, so templates can always index 0..15.
type Palette [16]RGB

// HexLines renders the palette as 16 "#RRGGBB" lines, the exact format
// written to cache files and the colors sentinel.
func (p Palette) HexLines() []string {
	lines := make([]string, len(p))
	for i, c := range p {
		lines[i] = c.Hex()
	}
	return lines
}

// FromThumbnail runs the full extraction pipeline against an already
// thumbnailed, ImageOperations-applied RGB image: HSV value clamp, Lab
// k-means, ordering, and accent/background/foreground derivation.
func FromThumbnail(img image.Image, params Params) Palette {
	clamped := clampPixelsHSV(img, params.ClampMin/255, params.ClampMax/255)
	labPoints := toLabPoints(clamped)
	centroids := ClusterLab(labPoints)

	hsv := make([]HSV, 0, 6)
	for _, c := range centroids {
		hsv = append(hsv, RGBToHSV(c.ToRGB()))
	}
	hsv = addMissingColors(hsv)
	hsv = OrderPalette(hsv, params.Order)

	return prepareColors(hsv, params.AccentColor)
}

// clampPixelsHSV converts every pixel to HSV, clamps V into [min,max], and
// converts back to RGB, restricting the clustering input to a perceptual
// band around mid-brightness.
func clampPixelsHSV(img image.Image, min, max float64) []RGB {
	b := img.Bounds()
	out := make([]RGB, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			rgb := RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
			clamped := RGBToHSV(rgb).ClampValue(min, max).ToRGB()
			out = append(out, clamped)
		}
	}
	return out
}

func toLabPoints(colors []RGB) []Lab {
	points := make([]Lab, len(colors))
	for i, c := range colors {
		points[i] = RGBToLab(c)
	}
	return points
}

// addMissingColors pads a degenerate clustering result (fewer than 6
// centroids survived) with pure white, matching the source's fallback.
func addMissingColors(hsv []HSV) []HSV {
	for len(hsv) < 6 {
		hsv = append(hsv, HSV{H: 0, S: 0, V: 1})
	}
	return hsv
}

// prepareColors derives accent/background/foreground and assembles the
// final 16-slot palette (8 distinct colors duplicated).
func prepareColors(hsv []HSV, accentColor uint32) Palette {
	idx := accentColor
	if idx > 5 {
		idx = 5
	}
	accent := hsv[idx].ToRGB()

	black := RGB{0, 0, 0}
	white := RGB{255, 255, 255}

	bg := mergeRGB(black, accent)
	fg := mergeRGB(white, accent)

	var eight [8]RGB
	eight[0] = bg
	for i := 0; i < 6; i++ {
		eight[i+1] = hsv[i].ToRGB()
	}
	eight[7] = fg

	var p Palette
	copy(p[0:8], eight[:])
	copy(p[8:16], eight[:])
	return p
}

// mergeRGB blends a and b as (4a+b)/5 per channel, the source's weighted
// accent/background/foreground derivation.
func mergeRGB(a, b RGB) RGB {
	return RGB{
		R: clampByte((4*float64(a.R) + float64(b.R)) / 5),
		G: clampByte((4*float64(a.G) + float64(b.G)) / 5),
		B: clampByte((4*float64(a.B) + float64(b.B)) / 5),
	}
}

// ThumbnailAndExtract resizes an already decoded image to the Params
// thumbnail size with nearest-neighbor, applies ops, and runs the palette
// pipeline. Decoding, and the black 4x4 placeholder used when decoding
// fails, are handled by the caller (see Compute).
func ThumbnailAndExtract(decoded image.Image, ops imageops.Operations, params Params) Palette {
	thumb := imageops.ResizeExactNearest(decoded, int(params.ThumbW), int(params.ThumbH))
	processed := imageops.Apply(thumb, ops)
	return FromThumbnail(processed, params)
}
