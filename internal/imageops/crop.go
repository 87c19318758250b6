package imageops

import (
	"image"

	"golang.org/x/image/draw"
)

// Crop extracts the rectangle (x, y, x+w, y+h) from img into a new image
// with its origin reset to (0,0), matching DynamicImage::crop_imm.
func Crop(img image.Image, x, y, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sr := image.Rect(x, y, x+w, y+h)
	draw.Draw(dst, dst.Bounds(), img, sr.Min, draw.Src)
	return dst
}
