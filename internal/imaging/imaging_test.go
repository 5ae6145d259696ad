package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

// encodeTestImage produces an encoded image of the given size.
func encodeTestImage(t *testing.T, w, h int, asPNG bool) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	var err error
	if asPNG {
		err = png.Encode(&buf, img)
	} else {
		err = jpeg.Encode(&buf, img, nil)
	}
	if err != nil {
		t.Fatalf("encode test image: %v", err)
	}
	return buf.Bytes()
}

// decodeDims decodes a JPEG and returns its dimensions.
func decodeDims(t *testing.T, data []byte) (int, int) {
	t.Helper()

	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode thumbnail: %v", err)
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

func TestThumbnailScalesDown(t *testing.T) {
	src := encodeTestImage(t, 1600, 1200, false)

	out, err := Thumbnail(src, 480)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	w, h := decodeDims(t, out)
	if w != 480 {
		t.Errorf("width = %d, want 480", w)
	}
	if h != 360 {
		t.Errorf("height = %d, want 360", h)
	}
}

func TestThumbnailPortraitKeepsAspect(t *testing.T) {
	src := encodeTestImage(t, 600, 1200, false)

	out, err := Thumbnail(src, 480)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	w, h := decodeDims(t, out)
	if h != 480 {
		t.Errorf("height = %d, want 480", h)
	}
	if w != 240 {
		t.Errorf("width = %d, want 240", w)
	}
}

func TestThumbnailSmallImageNotUpscaled(t *testing.T) {
	src := encodeTestImage(t, 200, 150, false)

	out, err := Thumbnail(src, 480)
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	w, h := decodeDims(t, out)
	if w != 200 || h != 150 {
		t.Errorf("dims = %dx%d, want 200x150 unchanged", w, h)
	}
}

func TestThumbnailAcceptsPNG(t *testing.T) {
	src := encodeTestImage(t, 800, 800, true)

	out, err := Thumbnail(src, 0) // 0 falls back to ThumbMaxDim
	if err != nil {
		t.Fatalf("Thumbnail: %v", err)
	}

	w, h := decodeDims(t, out)
	if w != ThumbMaxDim || h != ThumbMaxDim {
		t.Errorf("dims = %dx%d, want %dx%d", w, h, ThumbMaxDim, ThumbMaxDim)
	}
}

func TestThumbnailRejectsGarbage(t *testing.T) {
	if _, err := Thumbnail([]byte("not an image"), 480); err == nil {
		t.Error("expected error for undecodable input")
	}
}
