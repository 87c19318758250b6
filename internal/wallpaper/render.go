package wallpaper

import (
	"image"
	"sync"

	"github.com/kestrelwm/rpaperd/internal/display"
	"github.com/kestrelwm/rpaperd/internal/fingerprint"
	"github.com/kestrelwm/rpaperd/internal/imageops"
	"github.com/kestrelwm/rpaperd/internal/logging"
	"github.com/kestrelwm/rpaperd/internal/pathutil"
)

// RenderOptions bundles the inputs needed to render and cache one
// wallpaper image across every configured display.
type RenderOptions struct {
	ImagePath     string
	Displays      []display.Display
	Operations    imageops.Operations
	ResizeAlgo    imageops.Algorithm
	WallpapersDir string
}

// fallbackCanvasSize is the blank canvas substituted when the source image
// cannot be decoded, matching get_image's DynamicImage::new(1000, 1000, ...)
// fallback.
const fallbackCanvasSize = 1000

// RenderBase decodes the source image, resizes it to cover every display's
// combined bounding box, and applies the fixed-order ImageOperations
// pipeline. The result is the single "master" image each display's crop is
// cut from.
func RenderBase(opts RenderOptions) image.Image {
	decoded, err := imageops.Decode(opts.ImagePath)
	if err != nil {
		decoded = imageops.BlackPlaceholder(fallbackCanvasSize, fallbackCanvasSize)
	}

	maxW := display.MaxWidth(opts.Displays)
	maxH := display.MaxHeight(opts.Displays)

	bounds := decoded.Bounds()
	nw, nh := display.CoverSize(uint32(bounds.Dx()), uint32(bounds.Dy()), maxW, maxH)

	resized, err := imageops.Resize(decoded, int(nw), int(nh), opts.ResizeAlgo)
	if err != nil {
		resized = decoded
	}

	return imageops.Apply(resized, opts.Operations)
}

// CacheWallpaper renders the base image and crops+writes one file per
// display to its fingerprint-derived cache path, in parallel, mirroring the
// source's per-display thread::spawn/join fan-out.
func CacheWallpaper(log *logging.Logger, opts RenderOptions) error {
	if log != nil {
		log.Info("Caching wallpaper...")
	}

	base := RenderBase(opts)
	paths := fingerprint.CachePathsForDisplays(opts.Displays, opts.Operations, opts.ImagePath, opts.WallpapersDir)

	var wg sync.WaitGroup
	errs := make([]error, len(opts.Displays))
	for i, d := range opts.Displays {
		wg.Add(1)
		go func(i int, d display.Display, cachePath string) {
			defer wg.Done()
			cropped := imageops.Crop(base, int(d.X), int(d.Y), int(d.W), int(d.H))
			errs[i] = imageops.Encode(cropped, pathutil.ExpandUser(cachePath))
		}(i, d, paths[i])
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// CachedPathsExist reports whether every display's cache file for imagePath
// already exists on disk.
func CachedPathsExist(displays []display.Display, ops imageops.Operations, imagePath, wallpapersDir string) bool {
	for _, p := range fingerprint.CachePathsForDisplays(displays, ops, imagePath, wallpapersDir) {
		if !pathutil.Exists(pathutil.ExpandUser(p)) {
			return false
		}
	}
	return true
}
