package imageops

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/deepteams/webp"
)

// Decode opens path and decodes it using the standard library's registered
// decoders plus the ancillary formats this package pulls in (webp, bmp,
// tiff). The extension is not trusted; image.Decode sniffs the header.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageops: decode %s: %w", path, err)
	}
	return img, nil
}

// Encode writes img to path, choosing the encoder by the path's extension.
// Unrecognized extensions fall back to PNG, the only lossless format every
// caller can always decode back.
func Encode(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("imageops: creating cache directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageops: creating %s: %w", path, err)
	}
	defer f.Close()

	return encodeTo(f, img, strings.ToLower(filepath.Ext(path)))
}

func encodeTo(w io.Writer, img image.Image, ext string) error {
	switch ext {
	case ".jpg", ".jpeg":
		return jpegEncode(w, img)
	case ".webp":
		return webp.Encode(w, img, nil)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".gif":
		return gifEncode(w, img)
	default:
		return pngEncode(w, img)
	}
}
