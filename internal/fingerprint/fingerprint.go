// Package fingerprint derives the SHA-256 cache keys and paths used by
// the wallpaper and palette caches.
package fingerprint

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/kestrelwm/rpaperd/internal/colour"
	"github.com/kestrelwm/rpaperd/internal/display"
	"github.com/kestrelwm/rpaperd/internal/imageops"
	"github.com/kestrelwm/rpaperd/internal/pathutil"
)

// WallpaperKey canonicalizes the fields that determine one display's
// rendered wallpaper: the source image's basename, the display's
// identity and geometry, and the applied ImageOperations. Only the
// basename of the image path participates — never its expanded directory
// — so moving a cache directory never perturbs existing fingerprints.
func WallpaperKey(imagePath string, d display.Display, ops imageops.Operations) string {
	name := pathutil.ImageName(imagePath)
	return fmt.Sprintf("%s%s%s%s%s%s%s%s%s%s%s%s%s",
		name,
		d.Name,
		strconv.FormatUint(uint64(d.W), 10),
		strconv.FormatUint(uint64(d.H), 10),
		strconv.FormatUint(uint64(d.X), 10),
		strconv.FormatUint(uint64(d.Y), 10),
		formatFloat(ops.Contrast),
		strconv.FormatInt(int64(ops.Brightness), 10),
		strconv.FormatInt(int64(ops.HueRotate), 10),
		formatFloat(ops.Blur),
		strconv.FormatBool(ops.Invert),
		strconv.FormatBool(ops.FlipH),
		strconv.FormatBool(ops.FlipV),
	)
}

// PaletteKey canonicalizes the fields that determine one palette cache
// entry: the image basename, the applied ImageOperations (contrast,
// brightness, hue, invert — blur and flips are not part of the source's
// palette fingerprint contract), the ordering tag, and the RwalParams.
func PaletteKey(imagePath string, ops imageops.Operations, params colour.Params) string {
	name := pathutil.ImageName(imagePath)
	return fmt.Sprintf("%s%s%s%s%s%s%s%s%s%s%s%s",
		name,
		strconv.FormatInt(int64(ops.Brightness), 10),
		formatFloat(ops.Contrast),
		strconv.FormatInt(int64(ops.HueRotate), 10),
		strconv.FormatBool(ops.Invert),
		params.Order.Tag(),
		strconv.FormatUint(uint64(params.AccentColor), 10),
		formatFloat(params.ClampMin),
		formatFloat(params.ClampMax),
		strconv.FormatUint(uint64(params.ThumbW), 10),
		strconv.FormatUint(uint64(params.ThumbH), 10),
		strconv.FormatUint(uint64(params.Colors), 10),
	)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// WallpaperCachePath returns "<wallpapersDir>/<sha256>.<ext>" for one
// display, preserving the source image's extension.
func WallpaperCachePath(d display.Display, ops imageops.Operations, imagePath, wallpapersDir string) string {
	key := WallpaperKey(imagePath, d, ops)
	ext := filepath.Ext(imagePath)
	return filepath.Join(wallpapersDir, pathutil.HashString(key)+ext)
}

// CachePathsForDisplays returns one wallpaper cache path per display,
// preserving display order.
func CachePathsForDisplays(displays []display.Display, ops imageops.Operations, imagePath, wallpapersDir string) []string {
	paths := make([]string, len(displays))
	for i, d := range displays {
		paths[i] = WallpaperCachePath(d, ops, imagePath, wallpapersDir)
	}
	return paths
}

// PaletteCachePath returns "<palettesDir>/<sha256>" (no extension).
func PaletteCachePath(ops imageops.Operations, params colour.Params, imagePath, palettesDir string) string {
	key := PaletteKey(imagePath, ops, params)
	return filepath.Join(palettesDir, pathutil.HashString(key))
}
