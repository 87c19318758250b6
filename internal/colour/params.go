package colour

// Params is the palette engine's tunable configuration (the source's
// RwalParams): thumbnail size, HSV value clamp range, which centroid
// becomes the accent color, an informational color count, and the
// ordering strategy.
type Params struct {
	ThumbW, ThumbH     uint32
	ClampMin, ClampMax float64
	AccentColor        uint32
	Colors             uint32
	Order              OrderBy
}

// DefaultParams returns the config defaults: 200x200 thumbnail, clamp
// range [140,170], accent index 4, 7 "colors" (informational; the
// clustering step always produces 6), ordering by hue.
func DefaultParams() Params {
	return Params{
		ThumbW:      200,
		ThumbH:      200,
		ClampMin:    140,
		ClampMax:    170,
		AccentColor: 4,
		Colors:      7,
		Order:       Hue,
	}
}
