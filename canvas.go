package painter

import (
	"image"
	"net/netip"

	"github.com/pkg/errors"
)

// DefaultBaseAddr is the base address of the OpenBased community canvas
// (canvas.openbased.com).
const DefaultBaseAddr = "2602:f75c:c0::"

// canvasExtent is the number of addressable pixels per axis. Coordinates
// occupy one 16 bit group each in the destination address.
const canvasExtent = 1 << 16

// Canvas describes the addressable space of a remote pixel canvas: the
// base address its pixel addresses are derived from and the integer
// bounds a pixel coordinate must fall within. The canvas itself is owned
// and rendered by an external service; this type only captures enough
// geometry to target it.
type Canvas struct {
	Base   netip.Addr
	Bounds image.Rectangle
}

// NewCanvas returns a canvas rooted at the given base IPv6 address with
// the full 65536x65536 addressable space.
func NewCanvas(base string) (Canvas, error) {
	addr, err := netip.ParseAddr(base)
	if err != nil {
		return Canvas{}, errors.Wrap(err, "invalid canvas base address")
	}
	if !addr.Is6() || addr.Is4In6() {
		return Canvas{}, errors.Errorf("canvas base address must be IPv6, got %s", addr)
	}
	return Canvas{
		Base:   addr,
		Bounds: image.Rect(0, 0, canvasExtent, canvasExtent),
	}, nil
}

// Contains reports whether the canvas-space coordinate is addressable.
func (c Canvas) Contains(p image.Point) bool {
	return p.In(c.Bounds)
}

// Fit verifies that an image of the given size can be painted entirely
// inside the canvas when anchored at origin. On failure the returned
// CanvasFitError carries the nearest origin the image would fit at.
func (c Canvas) Fit(origin image.Point, size image.Point) error {
	if origin.X >= c.Bounds.Min.X && origin.Y >= c.Bounds.Min.Y &&
		origin.X+size.X <= c.Bounds.Max.X && origin.Y+size.Y <= c.Bounds.Max.Y {
		return nil
	}
	return &CanvasFitError{
		Origin:     origin,
		Size:       size,
		SuggestedX: c.Bounds.Max.X - size.X,
		SuggestedY: c.Bounds.Max.Y - size.Y,
	}
}
