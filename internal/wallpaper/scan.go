// Package wallpaper renders per-display wallpaper crops from a source
// image and drives the shell commands that apply them.
package wallpaper

import (
	"crypto/rand"
	"fmt"
	"io/fs"
	"math/big"
	"path/filepath"
	"slices"
	"strings"
)

// SupportedExtensions lists the image file extensions the directory scan
// accepts, matching case-insensitively.
func SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".webp", ".png", ".gif", ".bmp", ".tiff"}
}

func isImageFile(name string) bool {
	return slices.Contains(SupportedExtensions(), strings.ToLower(filepath.Ext(name)))
}

// ScanDirectory recursively enumerates every supported image file beneath
// dir, following the directory tree rather than the teacher's single-level
// scan, per the recursive-enumeration requirement for directory-mode
// requests.
func ScanDirectory(dir string) ([]string, error) {
	var images []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip entries we can't stat (permission issues, broken symlinks).
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if isImageFile(d.Name()) {
			images = append(images, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("wallpaper: scanning %s: %w", dir, err)
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("wallpaper: no supported image files found under %s", dir)
	}
	return images, nil
}

// SelectRandom picks one path from images using crypto/rand, matching the
// source's cryptographically-random directory-mode selection.
func SelectRandom(images []string) (string, error) {
	if len(images) == 0 {
		return "", fmt.Errorf("wallpaper: image list is empty")
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(images))))
	if err != nil {
		return "", fmt.Errorf("wallpaper: selecting random image: %w", err)
	}
	return images[n.Int64()], nil
}

// ResolvePath turns a request image path into a concrete image file: a
// file path is returned unchanged, a directory is recursively scanned and
// one entry chosen at random (the affect_all batch path is handled by the
// request handler, which calls ScanDirectory directly instead).
func ResolvePath(path string, isDir bool) (string, error) {
	if !isDir {
		return path, nil
	}
	images, err := ScanDirectory(path)
	if err != nil {
		return "", err
	}
	return SelectRandom(images)
}
