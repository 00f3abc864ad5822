package painter

import (
	"image"
	"image/color"
)

// Pixel is one paintable unit produced by a PixelSource: a canvas-space
// coordinate (origin already applied) and its color.
type Pixel struct {
	Coord image.Point
	Color color.NRGBA
}

// PixelSource walks the eligible pixels of an image in a deterministic
// order. A pixel is eligible when it is not fully transparent and its
// canvas-space coordinate is addressable. The forward order is row-major
// ascending, top-left to bottom-right; the reverse order visits the exact
// same set bottom-right to top-left. Reverse traversal is the convention
// for undo jobs: a later repaint of the same region converges predictably
// against a concurrent forward job on a last-write-wins canvas.
type PixelSource struct {
	img     *image.NRGBA
	origin  image.Point
	canvas  Canvas
	reverse bool

	pos                int
	skippedBounds      int
	skippedTransparent int
}

// NewPixelSource returns a source over the eligible pixels of img,
// anchored on the canvas at origin.
func NewPixelSource(img *image.NRGBA, origin image.Point, canvas Canvas, reverse bool) *PixelSource {
	return &PixelSource{
		img:     img,
		origin:  origin,
		canvas:  canvas,
		reverse: reverse,
	}
}

// Next yields the next eligible pixel. It returns false once the image
// is exhausted. Ineligible pixels are counted, never yielded.
func (s *PixelSource) Next() (Pixel, bool) {
	b := s.img.Bounds()
	w, h := b.Dx(), b.Dy()
	total := w * h

	for ; s.pos < total; s.pos++ {
		i := s.pos
		if s.reverse {
			i = total - 1 - i
		}
		x, y := i%w, i/w

		col := s.img.NRGBAAt(b.Min.X+x, b.Min.Y+y)
		if col.A == 0 {
			s.skippedTransparent++
			continue
		}

		coord := s.origin.Add(image.Pt(x, y))
		if !s.canvas.Contains(coord) {
			s.skippedBounds++
			continue
		}

		s.pos++
		return Pixel{Coord: coord, Color: col}, true
	}
	return Pixel{}, false
}

// Reset rewinds the source to the first pixel and clears the skip
// counters, making the sequence restartable.
func (s *PixelSource) Reset() {
	s.pos = 0
	s.skippedBounds = 0
	s.skippedTransparent = 0
}

// SkippedBounds returns the number of pixels excluded so far because
// their canvas coordinate fell outside the addressable bounds.
func (s *PixelSource) SkippedBounds() int {
	return s.skippedBounds
}

// SkippedTransparent returns the number of fully transparent pixels
// excluded so far.
func (s *PixelSource) SkippedTransparent() int {
	return s.skippedTransparent
}

// Len returns the total number of pixels in the underlying image,
// eligible or not. It is the denominator for progress reporting.
func (s *PixelSource) Len() int {
	return s.img.Bounds().Dx() * s.img.Bounds().Dy()
}
