package colour

import "math"

// HSV is a color in the hue/saturation/value model: H in degrees [0,360),
// S and V in [0,1].
type HSV struct {
	H, S, V float64
}

// RGBToHSV converts an 8-bit RGB triple to HSV.
func RGBToHSV(c RGB) HSV {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	var h float64
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * math.Mod((g-b)/delta, 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if max != 0 {
		s = delta / max
	}

	return HSV{H: h, S: s, V: max}
}

// ToRGB converts HSV back to 8-bit RGB.
func (c HSV) ToRGB() RGB {
	h := math.Mod(c.H, 360)
	if h < 0 {
		h += 360
	}
	cc := c.V * c.S
	x := cc * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := c.V - cc

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = cc, x, 0
	case h < 120:
		r, g, b = x, cc, 0
	case h < 180:
		r, g, b = 0, cc, x
	case h < 240:
		r, g, b = 0, x, cc
	case h < 300:
		r, g, b = x, 0, cc
	default:
		r, g, b = cc, 0, x
	}

	return RGB{
		R: clampByte((r + m) * 255),
		G: clampByte((g + m) * 255),
		B: clampByte((b + m) * 255),
	}
}

// ClampValue returns c with V clamped into [min, max].
func (c HSV) ClampValue(min, max float64) HSV {
	v := c.V
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return HSV{H: c.H, S: c.S, V: v}
}
