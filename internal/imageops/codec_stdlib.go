package imageops

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
)

func jpegEncode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
}

func pngEncode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func gifEncode(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}
