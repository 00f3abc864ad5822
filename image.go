package painter

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"

	"github.com/manpaco/ipv6-canvas-painter/utils"
)

// LoadImage decodes the image file into an NRGBA pixel grid. EXIF
// orientation is honored so the painted result matches what an image
// viewer shows.
func LoadImage(path string) (*image.NRGBA, error) {
	ctype, err := utils.DetectFileContentType(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read the source image")
	}
	if !strings.Contains(ctype.(string), "image") {
		return nil, errors.Errorf("%s is not an image file", path)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode the source image")
	}
	return imaging.Clone(img), nil
}

// DecodeImage decodes an image stream (a pipe, typically) into an NRGBA
// pixel grid.
func DecodeImage(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode the source image")
	}
	return imaging.Clone(img), nil
}

// ScaleImage resizes the image to the given percentage of its original
// dimensions, preserving the aspect ratio. Percentages of 0 or 100
// return the image unchanged. Painting runs one transmission per pixel,
// so pre-scaling is the practical way to keep a job's footprint on the
// shared canvas proportionate.
func ScaleImage(img *image.NRGBA, percent int) (*image.NRGBA, error) {
	if percent == 0 || percent == 100 {
		return img, nil
	}
	if percent < 0 {
		return nil, errors.Errorf("scale percentage must be positive, got %d", percent)
	}

	w := utils.Max(img.Bounds().Dx()*percent/100, 1)
	return imaging.Resize(img, w, 0, imaging.Lanczos), nil
}
