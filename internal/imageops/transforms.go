package imageops

import (
	"image"
	"image/color"
	"math"
)

// toRGBA64 walks img once into an addressable buffer so each transform can
// mutate per-pixel values without re-querying the source image's At method
// on every read.
func toRGBA64(img image.Image) *image.RGBA64 {
	if rgba, ok := img.(*image.RGBA64); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA64(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// adjustContrast mirrors the image crate's adjust_contrast: pixels are
// pushed away from (percent > 0) or toward (percent < 0) mid-gray 128,
// scaled by a tangent factor derived from the contrast percentage.
func adjustContrast(img image.Image, percent float64) image.Image {
	src := toRGBA64(img)
	b := src.Bounds()
	out := image.NewRGBA64(b)

	percent = math.Max(-100, math.Min(100, percent))
	factor := (100.0 + percent) / 100.0
	factor *= factor

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			out.Set(x, y, color.RGBA64{
				R: contrastChannel(r, factor),
				G: contrastChannel(g, factor),
				B: contrastChannel(bl, factor),
				A: uint16(a),
			})
		}
	}
	return out
}

func contrastChannel(v uint32, factor float64) uint16 {
	f := float64(v)/65535.0 - 0.5
	f = f*factor + 0.5
	f = math.Max(0, math.Min(1, f))
	return uint16(f * 65535.0)
}

// brighten mirrors brighten(): each channel is offset by `amount` clamped
// to the 0-255 range (scaled to 16-bit internally).
func brighten(img image.Image, amount int32) image.Image {
	src := toRGBA64(img)
	b := src.Bounds()
	out := image.NewRGBA64(b)
	offset := int32(amount) * 257 // scale 0-255 delta into 0-65535 space

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			out.Set(x, y, color.RGBA64{
				R: clampAdd16(r, offset),
				G: clampAdd16(g, offset),
				B: clampAdd16(bl, offset),
				A: uint16(a),
			})
		}
	}
	return out
}

func clampAdd16(v uint32, delta int32) uint16 {
	r := int32(v) + delta
	if r < 0 {
		r = 0
	}
	if r > 65535 {
		r = 65535
	}
	return uint16(r)
}

// hueRotate rotates each pixel's hue by degrees around the HSL hue wheel.
func hueRotate(img image.Image, degrees int32) image.Image {
	src := toRGBA64(img)
	b := src.Bounds()
	out := image.NewRGBA64(b)
	shift := float64(((degrees % 360) + 360) % 360)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			h, s, l := rgbToHSL(float64(r)/65535, float64(g)/65535, float64(bl)/65535)
			h = math.Mod(h+shift, 360)
			nr, ng, nb := hslToRGB(h, s, l)
			out.Set(x, y, color.RGBA64{
				R: uint16(nr * 65535),
				G: uint16(ng * 65535),
				B: uint16(nb * 65535),
				A: uint16(a),
			})
		}
	}
	return out
}

// invert flips every channel to its complement, leaving alpha untouched.
func invert(img image.Image) image.Image {
	src := toRGBA64(img)
	b := src.Bounds()
	out := image.NewRGBA64(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			out.Set(x, y, color.RGBA64{
				R: 65535 - uint16(r),
				G: 65535 - uint16(g),
				B: 65535 - uint16(bl),
				A: uint16(a),
			})
		}
	}
	return out
}

// flipH mirrors the image left-right.
func flipH(img image.Image) image.Image {
	src := toRGBA64(img)
	b := src.Bounds()
	out := image.NewRGBA64(b)
	w := b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(b.Min.X+w-1-(x-b.Min.X), y, src.At(x, y))
		}
	}
	return out
}

// flipV mirrors the image top-bottom.
func flipV(img image.Image) image.Image {
	src := toRGBA64(img)
	b := src.Bounds()
	out := image.NewRGBA64(b)
	h := b.Dy()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, b.Min.Y+h-1-(y-b.Min.Y), src.At(x, y))
		}
	}
	return out
}

// rgbToHSL and hslToRGB operate on [0,1]-normalized channels and degrees
// hue, used only by hueRotate. The palette engine's own HSV/Lab math lives
// in internal/colour and is independent of this pair.
func rgbToHSL(r, g, bl float64) (h, s, l float64) {
	max := math.Max(r, math.Max(g, bl))
	min := math.Min(r, math.Min(g, bl))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case r:
		h = (g - bl) / d
		if g < bl {
			h += 6
		}
	case g:
		h = (bl-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60
	return h, s, l
}

func hslToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	hk := h / 360
	r = hueToRGB(p, q, hk+1.0/3.0)
	g = hueToRGB(p, q, hk)
	b = hueToRGB(p, q, hk-1.0/3.0)
	return r, g, b
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
