package imageops

import (
	"image"
	"math"
)

// gaussianBlur applies a separable Gaussian blur with standard deviation
// sigma, matching the image crate's blur() which takes a sigma directly.
func gaussianBlur(img image.Image, sigma float64) image.Image {
	if sigma <= 0 {
		return img
	}
	kernel := gaussianKernel1D(sigma)
	src := toRGBA64(img)
	horiz := convolveHorizontal(src, kernel)
	return convolveVertical(horiz, kernel)
}

// gaussianKernel1D builds a normalized 1D Gaussian kernel sized to cover
// +/-3 sigma.
func gaussianKernel1D(sigma float64) []float64 {
	radius := int(math.Ceil(sigma * 3))
	if radius < 1 {
		radius = 1
	}
	size := 2*radius + 1
	kernel := make([]float64, size)
	sum := 0.0
	for i := range size {
		x := float64(i - radius)
		v := math.Exp(-(x * x) / (2 * sigma * sigma))
		kernel[i] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

func convolveHorizontal(src *image.RGBA64, kernel []float64) *image.RGBA64 {
	b := src.Bounds()
	out := image.NewRGBA64(b)
	radius := len(kernel) / 2

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var r, g, bl, a float64
			for k, w := range kernel {
				sx := clampInt(x+k-radius, b.Min.X, b.Max.X-1)
				pr, pg, pb, pa := src.At(sx, y).RGBA()
				r += float64(pr) * w
				g += float64(pg) * w
				bl += float64(pb) * w
				a += float64(pa) * w
			}
			out.Set(x, y, rgba64(r, g, bl, a))
		}
	}
	return out
}

func convolveVertical(src *image.RGBA64, kernel []float64) *image.RGBA64 {
	b := src.Bounds()
	out := image.NewRGBA64(b)
	radius := len(kernel) / 2

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var r, g, bl, a float64
			for k, w := range kernel {
				sy := clampInt(y+k-radius, b.Min.Y, b.Max.Y-1)
				pr, pg, pb, pa := src.At(x, sy).RGBA()
				r += float64(pr) * w
				g += float64(pg) * w
				bl += float64(pb) * w
				a += float64(pa) * w
			}
			out.Set(x, y, rgba64(r, g, bl, a))
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
