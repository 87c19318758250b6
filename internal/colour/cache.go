package colour

import (
	"fmt"
	"os"
	"strings"

	"github.com/kestrelwm/rpaperd/internal/imageops"
	"github.com/kestrelwm/rpaperd/internal/pathutil"
)

// RunOptions bundles the inputs needed to compute or read a cached
// palette, mirroring run_rwal's parameters.
type RunOptions struct {
	ImagePath       string
	CacheFilePath   string // the fingerprint-derived palette cache path
	Params          Params
	Operations      imageops.Operations
	ColorsSentinel  string // "current colorscheme" path, last-writer-wins
}

// Run returns the cached palette's 16 hex lines if the cache file already
// exists, otherwise computes it and writes both the cache file and the
// sentinel. In both cases the sentinel is refreshed, matching the
// source's run_rwal, which copies the cache file's contents into the
// sentinel on every call regardless of hit or miss.
func Run(opts RunOptions) ([]string, error) {
	var lines []string

	if _, err := os.Stat(opts.CacheFilePath); err != nil {
		computed, cacheErr := Compute(opts)
		if cacheErr != nil {
			return nil, cacheErr
		}
		lines = computed
	} else {
		data, err := os.ReadFile(opts.CacheFilePath)
		if err != nil {
			return nil, fmt.Errorf("colour: reading palette cache %s: %w", opts.CacheFilePath, err)
		}
		lines = splitLines(string(data))
	}

	if opts.ColorsSentinel != "" {
		if err := pathutil.WriteFileAtomic(opts.ColorsSentinel, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
			// Non-fatal: the palette itself is still valid and returned.
			_ = err
		}
	}

	return lines, nil
}

// Compute decodes the source image, extracts the palette, and writes it
// to the cache file. A cache write failure is neither returned nor logged;
// the computed palette is returned either way. Decode failure produces
// a degenerate palette from a 4x4 black placeholder, matching the
// source's get_thumbed_image fallback.
func Compute(opts RunOptions) ([]string, error) {
	decoded, err := imageops.Decode(opts.ImagePath)
	if err != nil {
		decoded = imageops.BlackPlaceholder(4, 4)
	}

	palette := ThumbnailAndExtract(decoded, opts.Operations, opts.Params)
	lines := palette.HexLines()
	content := strings.Join(lines, "\n")

	if err := pathutil.WriteFileAtomic(opts.CacheFilePath, []byte(content), 0o644); err != nil {
		// The write error is dropped; the computed palette is still valid.
		return lines, nil
	}

	return lines, nil
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
