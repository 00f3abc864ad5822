package painter

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestImage_DecodeImage(t *testing.T) {
	src := newTestImage(6, 4)
	var buf bytes.Buffer
	if err := png.Encode(&buf, src); err != nil {
		t.Fatalf("could not encode the fixture image: %v", err)
	}

	img, err := DecodeImage(&buf)
	if err != nil {
		t.Fatalf("decoding the image stream failed: %v", err)
	}
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
		t.Errorf("decoded image expected to be 6x4. Got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
	if got := img.NRGBAAt(2, 3); got != src.NRGBAAt(2, 3) {
		t.Errorf("decoded pixel (2,3) expected to be %v. Got %v", src.NRGBAAt(2, 3), got)
	}
}

func TestImage_DecodeImage_NotAnImage(t *testing.T) {
	if _, err := DecodeImage(bytes.NewBufferString("plain text")); err == nil {
		t.Errorf("a non-image stream should fail to decode")
	}
}

func TestImage_LoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("could not create the fixture file: %v", err)
	}
	src := newTestImage(5, 5)
	src.SetNRGBA(0, 0, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	if err := png.Encode(f, src); err != nil {
		t.Fatalf("could not encode the fixture file: %v", err)
	}
	f.Close()

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("loading the image file failed: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got != src.NRGBAAt(0, 0) {
		t.Errorf("loaded pixel (0,0) expected to be %v. Got %v", src.NRGBAAt(0, 0), got)
	}

	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Errorf("a missing image file should fail to load")
	}
}

func TestImage_ScaleImage(t *testing.T) {
	img := newTestImage(10, 6)

	scaled, err := ScaleImage(img, 50)
	if err != nil {
		t.Fatalf("scaling failed: %v", err)
	}
	if scaled.Bounds().Dx() != 5 || scaled.Bounds().Dy() != 3 {
		t.Errorf("scaled image expected to be 5x3. Got %dx%d", scaled.Bounds().Dx(), scaled.Bounds().Dy())
	}

	// A tiny percentage must never collapse the image to zero pixels.
	tiny, err := ScaleImage(img, 5)
	if err != nil {
		t.Fatalf("scaling to a tiny percentage failed: %v", err)
	}
	if tiny.Bounds().Dx() < 1 || tiny.Bounds().Dy() < 1 {
		t.Errorf("scaled image expected to keep at least one pixel. Got %dx%d",
			tiny.Bounds().Dx(), tiny.Bounds().Dy())
	}

	same, err := ScaleImage(img, 0)
	if err != nil {
		t.Fatalf("a zero percentage should be a no-op: %v", err)
	}
	if same != img {
		t.Errorf("a zero percentage should return the image unchanged")
	}

	if _, err := ScaleImage(img, -10); err == nil {
		t.Errorf("a negative percentage should be rejected")
	}
}
