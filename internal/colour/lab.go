package colour

import "math"

// Lab is a color in CIE L*a*b* space, chosen for k-means clustering
// because Euclidean distance there tracks perceived color difference far
// better than in RGB. No library in the retrieval pack provides this
// conversion, so it is implemented here directly from the published CIE
// formulas (D65 reference white, sRGB companding).
type Lab struct {
	L, A, B float64
}

// D65 reference white in CIE XYZ, normalized so Y=100.
const (
	whiteX = 95.047
	whiteY = 100.000
	whiteZ = 108.883
)

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// RGBToLab converts an 8-bit RGB triple to CIE L*a*b*.
func RGBToLab(c RGB) Lab {
	r := srgbToLinear(float64(c.R) / 255)
	g := srgbToLinear(float64(c.G) / 255)
	b := srgbToLinear(float64(c.B) / 255)

	x := (r*0.4124564 + g*0.3575761 + b*0.1804375) * 100
	y := (r*0.2126729 + g*0.7151522 + b*0.0721750) * 100
	z := (r*0.0193339 + g*0.1191920 + b*0.9503041) * 100

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// ToRGB converts Lab back to 8-bit RGB, clamping out-of-gamut results.
func (l Lab) ToRGB() RGB {
	fy := (l.L + 16) / 116
	fx := fy + l.A/500
	fz := fy - l.B/200

	x := whiteX * labFInv(fx)
	y := whiteY * labFInv(fy)
	z := whiteZ * labFInv(fz)

	x /= 100
	y /= 100
	z /= 100

	r := x*3.2404542 + y*(-1.5371385) + z*(-0.4985314)
	g := x*(-0.9692660) + y*1.8760108 + z*0.0415560
	b := x*0.0556434 + y*(-0.2040259) + z*1.0572252

	return RGB{
		R: clampByte(linearToSRGB(r) * 255),
		G: clampByte(linearToSRGB(g) * 255),
		B: clampByte(linearToSRGB(b) * 255),
	}
}

// Distance returns the Euclidean distance between two Lab points.
func (l Lab) Distance(other Lab) float64 {
	dl := l.L - other.L
	da := l.A - other.A
	db := l.B - other.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
