package painter

import (
	"image"
	"testing"
)

func TestCanvas_NewCanvas(t *testing.T) {
	c, err := NewCanvas(DefaultBaseAddr)
	if err != nil {
		t.Fatalf("the default base address should be accepted: %v", err)
	}
	if c.Bounds.Dx() != 65536 || c.Bounds.Dy() != 65536 {
		t.Errorf("canvas bounds expected to be 65536x65536. Got %dx%d", c.Bounds.Dx(), c.Bounds.Dy())
	}

	for _, base := range []string{"not-an-address", "192.168.0.1", ""} {
		if _, err := NewCanvas(base); err == nil {
			t.Errorf("base address %q should have been rejected", base)
		}
	}
}

func TestCanvas_Contains(t *testing.T) {
	c := testCanvas(t)

	inside := []image.Point{image.Pt(0, 0), image.Pt(65535, 65535), image.Pt(100, 4000)}
	for _, p := range inside {
		if !c.Contains(p) {
			t.Errorf("(%d,%d) expected to be addressable", p.X, p.Y)
		}
	}

	outside := []image.Point{image.Pt(-1, 0), image.Pt(0, -1), image.Pt(65536, 0), image.Pt(0, 65536)}
	for _, p := range outside {
		if c.Contains(p) {
			t.Errorf("(%d,%d) expected to be outside the canvas", p.X, p.Y)
		}
	}
}

func TestCanvas_Fit(t *testing.T) {
	c := testCanvas(t)

	if err := c.Fit(image.Pt(0, 0), image.Pt(65536, 65536)); err != nil {
		t.Errorf("a canvas-sized image at the zero origin should fit: %v", err)
	}

	err := c.Fit(image.Pt(65500, 10), image.Pt(100, 50))
	if err == nil {
		t.Fatal("an image overflowing the right edge should not fit")
	}
	fit, ok := err.(*CanvasFitError)
	if !ok {
		t.Fatalf("expected a CanvasFitError, got %T", err)
	}
	if fit.SuggestedX != 65436 {
		t.Errorf("suggested x expected to be 65436. Got %d", fit.SuggestedX)
	}
	if fit.SuggestedY != 65486 {
		t.Errorf("suggested y expected to be 65486. Got %d", fit.SuggestedY)
	}
}
