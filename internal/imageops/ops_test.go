package imageops

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestOperationsIsZero(t *testing.T) {
	if !(Operations{}).IsZero() {
		t.Fatal("zero-value Operations should be IsZero")
	}
	if (Operations{Contrast: 1}).IsZero() {
		t.Fatal("non-zero Contrast should not be IsZero")
	}
}

func TestApplyInvert(t *testing.T) {
	img := solidImage(2, 2, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	out := Apply(img, Operations{Invert: true})
	r, g, b, _ := out.At(0, 0).RGBA()
	if r>>8 == 10 || g>>8 == 20 || b>>8 == 30 {
		t.Fatalf("invert did not change channels: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestApplyIdentitySkipsWork(t *testing.T) {
	img := solidImage(2, 2, color.RGBA{R: 1, G: 2, B: 3, A: 255})
	out := Apply(img, Operations{})
	if out != image.Image(img) {
		t.Fatal("zero Operations should return the same image, not a copy")
	}
}

func TestFlipHFlipV(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})

	h := flipH(img)
	r, _, _, _ := h.At(1, 0).RGBA()
	if r>>8 != 255 {
		t.Fatal("flipH should move (0,0) to (1,0)")
	}

	v := flipV(img)
	r2, g2, _, _ := v.At(0, 1).RGBA()
	if r2>>8 != 255 || g2 != 0 {
		t.Fatal("flipV should move (0,0) to (0,1)")
	}
}

func TestParseAlgorithmDefaultsToTriangle(t *testing.T) {
	if ParseAlgorithm("bogus") != Triangle {
		t.Fatal("unrecognized algorithm should default to Triangle")
	}
	if ParseAlgorithm("Nearest") != Nearest {
		t.Fatal("Nearest should round-trip")
	}
}

func TestResizeNearestDimensions(t *testing.T) {
	img := solidImage(10, 10, color.RGBA{R: 1, A: 255})
	out, err := Resize(img, 5, 5, Nearest)
	if err != nil {
		t.Fatalf("Resize error: %v", err)
	}
	if out.Bounds().Dx() != 5 || out.Bounds().Dy() != 5 {
		t.Fatalf("got %v, want 5x5", out.Bounds())
	}
}

func TestResizeLanczos3Dimensions(t *testing.T) {
	img := solidImage(20, 20, color.RGBA{G: 200, A: 255})
	out, err := Resize(img, 7, 9, Lanczos3)
	if err != nil {
		t.Fatalf("Resize error: %v", err)
	}
	if out.Bounds().Dx() != 7 || out.Bounds().Dy() != 9 {
		t.Fatalf("got %v, want 7x9", out.Bounds())
	}
}

func TestCrop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(2, 2, color.RGBA{B: 255, A: 255})
	out := Crop(img, 2, 2, 2, 2)
	_, _, b, _ := out.At(0, 0).RGBA()
	if b>>8 != 255 {
		t.Fatal("crop did not preserve pixel at new origin")
	}
}
