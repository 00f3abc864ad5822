package painter

import (
	"image"
	"image/color"
	"net/netip"

	"github.com/pkg/errors"
)

// ColorPolicy controls what happens when a pixel's color is not exactly
// representable by the canvas protocol.
type ColorPolicy int

const (
	// QuantizeColors snaps unrepresentable colors to the nearest
	// supported value.
	QuantizeColors ColorPolicy = iota
	// SkipColors rejects unrepresentable colors with an
	// UnsupportedColorError; the scheduler skips the pixel and proceeds.
	SkipColors
	// StrictColors rejects unrepresentable colors and aborts the run.
	StrictColors
)

// Protocol converts between a canvas-space pixel and the destination
// address the canvas service interprets as a pixel-set command.
// Implementations must be pure: Encode and Decode are inverses over the
// color subset the protocol supports, and neither performs I/O.
type Protocol interface {
	Encode(c Canvas, p image.Point, col color.NRGBA) (netip.Addr, error)
	Decode(c Canvas, addr netip.Addr) (image.Point, color.NRGBA, error)
}

// ProtocolV1 implements the original canvas address layout: the low 64
// bits of the destination address hold XXXX:YYYY:RRGG:BBAA, that is a 16
// bit x coordinate, a 16 bit y coordinate and four 8 bit color channels.
// The high 64 bits are taken from the canvas base address. Full 8 bit
// RGBA is representable, so the codec never quantizes.
type ProtocolV1 struct{}

func (ProtocolV1) Encode(c Canvas, p image.Point, col color.NRGBA) (netip.Addr, error) {
	if !c.Contains(p) {
		return netip.Addr{}, &BoundsError{Coord: p, Bounds: c.Bounds}
	}

	b := c.Base.As16()
	b[8] = byte(p.X >> 8)
	b[9] = byte(p.X)
	b[10] = byte(p.Y >> 8)
	b[11] = byte(p.Y)
	b[12] = col.R
	b[13] = col.G
	b[14] = col.B
	b[15] = col.A

	return netip.AddrFrom16(b), nil
}

func (ProtocolV1) Decode(c Canvas, addr netip.Addr) (image.Point, color.NRGBA, error) {
	if !addr.Is6() {
		return image.Point{}, color.NRGBA{}, errors.Errorf("not an IPv6 canvas address: %s", addr)
	}

	b := addr.As16()
	base := c.Base.As16()
	for i := 0; i < 8; i++ {
		if b[i] != base[i] {
			return image.Point{}, color.NRGBA{}, errors.Errorf("address %s is not rooted at canvas base %s", addr, c.Base)
		}
	}

	p := image.Point{
		X: int(b[8])<<8 | int(b[9]),
		Y: int(b[10])<<8 | int(b[11]),
	}
	col := color.NRGBA{R: b[12], G: b[13], B: b[14], A: b[15]}

	return p, col, nil
}

// PaletteProtocol restricts another protocol to a fixed color palette,
// for canvases which only render a reduced color set. The policy decides
// whether off-palette colors are snapped to the nearest palette entry or
// rejected with an UnsupportedColorError.
type PaletteProtocol struct {
	Inner   Protocol
	Palette color.Palette
	Policy  ColorPolicy
}

func (pp PaletteProtocol) Encode(c Canvas, p image.Point, col color.NRGBA) (netip.Addr, error) {
	snapped := color.NRGBAModel.Convert(pp.Palette.Convert(col)).(color.NRGBA)
	// The original alpha survives quantization: the palette constrains
	// the visible color only.
	snapped.A = col.A

	if pp.Policy != QuantizeColors && snapped != col {
		return netip.Addr{}, &UnsupportedColorError{Color: col}
	}
	return pp.Inner.Encode(c, p, snapped)
}

func (pp PaletteProtocol) Decode(c Canvas, addr netip.Addr) (image.Point, color.NRGBA, error) {
	p, col, err := pp.Inner.Decode(c, addr)
	if err != nil {
		return image.Point{}, color.NRGBA{}, err
	}
	a := col.A
	col = color.NRGBAModel.Convert(pp.Palette.Convert(col)).(color.NRGBA)
	col.A = a
	return p, col, nil
}
