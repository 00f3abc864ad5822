package painter

import (
	"image"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// ParseOrigin parses a coordinate record into a canvas origin. The
// accepted grammar is two integers separated by a comma, optionally
// followed by a comma and a single-character tag which parsing ignores:
//
//	38650,45582
//	38650,45582,a
//
// Records are externally authored; anything outside the grammar fails
// with a MalformedCoordinateError.
func ParseOrigin(record string) (image.Point, error) {
	fields := strings.Split(strings.TrimSpace(record), ",")
	if len(fields) != 2 && len(fields) != 3 {
		return image.Point{}, &MalformedCoordinateError{
			Record: record,
			Reason: "expected two integers and an optional tag",
		}
	}

	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return image.Point{}, &MalformedCoordinateError{
			Record: record,
			Reason: "x is not an integer",
		}
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return image.Point{}, &MalformedCoordinateError{
			Record: record,
			Reason: "y is not an integer",
		}
	}
	if len(fields) == 3 && utf8.RuneCountInString(fields[2]) != 1 {
		return image.Point{}, &MalformedCoordinateError{
			Record: record,
			Reason: "tag must be a single character",
		}
	}

	return image.Pt(x, y), nil
}

// FormatOrigin renders an origin back into the record grammar. A zero
// tag omits the tag field.
func FormatOrigin(p image.Point, tag rune) string {
	if tag == 0 {
		return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y)
	}
	return strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + "," + string(tag)
}

// ReadOriginFile reads a one-line coordinate record from disk.
func ReadOriginFile(path string) (image.Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return image.Point{}, errors.Wrap(err, "unable to read the coordinate record")
	}
	return ParseOrigin(string(data))
}
