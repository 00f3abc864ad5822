package painter

import (
	"fmt"
	"image"
	"image/color"
	"net/netip"
)

// BoundsError reports a coordinate which falls outside the canvas's
// addressable space after the origin offset has been applied.
type BoundsError struct {
	Coord  image.Point
	Bounds image.Rectangle
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coordinate (%d,%d) is outside the canvas bounds %v", e.Coord.X, e.Coord.Y, e.Bounds)
}

// CanvasFitError reports that the whole image cannot be placed at the
// requested origin. It carries the nearest origin the image would fit at,
// with a negative suggestion meaning the image is larger than the canvas.
type CanvasFitError struct {
	Origin     image.Point
	Size       image.Point
	SuggestedX int
	SuggestedY int
}

func (e *CanvasFitError) Error() string {
	return fmt.Sprintf("a %dx%d image does not fit on the canvas at origin (%d,%d)",
		e.Size.X, e.Size.Y, e.Origin.X, e.Origin.Y)
}

// UnsupportedColorError reports a color the canvas protocol cannot
// represent under the strict color policy.
type UnsupportedColorError struct {
	Color color.NRGBA
}

func (e *UnsupportedColorError) Error() string {
	return fmt.Sprintf("color #%02x%02x%02x%02x is not representable by the canvas palette",
		e.Color.R, e.Color.G, e.Color.B, e.Color.A)
}

// MalformedCoordinateError reports a coordinate record which does not
// match the expected grammar.
type MalformedCoordinateError struct {
	Record string
	Reason string
}

func (e *MalformedCoordinateError) Error() string {
	return fmt.Sprintf("malformed coordinate record %q: %s", e.Record, e.Reason)
}

// TransmissionError reports a failed delivery attempt for one pixel.
// The underlying transport error is retained for the run summary.
type TransmissionError struct {
	Addr netip.Addr
	Err  error
}

func (e *TransmissionError) Error() string {
	return fmt.Sprintf("transmission to %s failed: %v", e.Addr, e.Err)
}

func (e *TransmissionError) Unwrap() error {
	return e.Err
}
