// Package imageops implements the fixed-order pixel operation pipeline
// shared by the palette engine's thumbnail and the wallpaper renderer, plus
// the resize-algorithm and codec dispatch both of them need.
package imageops

import (
	"image"

	"golang.org/x/image/draw"
)

// Operations is the set of adjustments applied to a decoded image before
// it is clustered for a palette or cropped for a display. Fields at their
// zero value are skipped entirely, matching the source renderer's
// "identity means no-op" behavior exactly (so a zero Operations never
// reallocates the image).
type Operations struct {
	Contrast   float64
	Brightness int32
	HueRotate  int32
	Blur       float64
	Invert     bool
	FlipH      bool
	FlipV      bool
}

// IsZero reports whether every field is at its identity value.
func (o Operations) IsZero() bool {
	return o.Contrast == 0 && o.Brightness == 0 && o.HueRotate == 0 &&
		o.Blur == 0 && !o.Invert && !o.FlipH && !o.FlipV
}

// Apply runs the fixed-order pipeline: contrast, brightness, hue-rotate,
// blur, flip horizontal, flip vertical, invert. The order is part of the
// cache fingerprint contract and must never change.
func Apply(img image.Image, ops Operations) image.Image {
	out := img
	if ops.Contrast != 0 {
		out = adjustContrast(out, ops.Contrast)
	}
	if ops.Brightness != 0 {
		out = brighten(out, ops.Brightness)
	}
	if ops.HueRotate != 0 {
		out = hueRotate(out, ops.HueRotate)
	}
	if ops.Blur != 0 {
		out = gaussianBlur(out, ops.Blur)
	}
	if ops.FlipH {
		out = flipH(out)
	}
	if ops.FlipV {
		out = flipV(out)
	}
	if ops.Invert {
		out = invert(out)
	}
	return out
}

// blackImage returns the placeholder image the renderer falls back to when
// a source image fails to decode, matching the source's
// "DynamicImage::new(w, h, ColorType::Rgb8)" fallback (a fully black
// canvas of the requested size).
func blackImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// BlackPlaceholder returns a black w x h RGBA image, used whenever a
// wallpaper or palette source image cannot be decoded.
func BlackPlaceholder(w, h int) *image.RGBA {
	return blackImage(w, h)
}

// resizeExactNearest is the thumbnail resize used by the palette engine,
// which always uses nearest-neighbor regardless of the configured display
// resize algorithm.
func resizeExactNearest(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// ResizeExactNearest resizes img to exactly w x h using nearest-neighbor
// sampling, used for the palette engine's fixed-size thumbnail.
func ResizeExactNearest(img image.Image, w, h int) image.Image {
	return resizeExactNearest(img, w, h)
}
