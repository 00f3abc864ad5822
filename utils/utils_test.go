package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestUtils_ShouldDecorateText(t *testing.T) {
	got := DecorateText("painting", ErrorMessage)
	if !strings.HasPrefix(got, ErrorColor) || !strings.HasSuffix(got, DefaultColor) {
		t.Errorf("error messages should be wrapped in the error color, got %q", got)
	}
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	if !IsValidUrl("https://canvas.openbased.com/image.png") {
		t.Errorf("A valid URL should have been provided")
	}
	if IsValidUrl("gopher.png") {
		t.Errorf("A local path is not a URL")
	}
	if IsValidUrl("-") {
		t.Errorf("The pipe name is not a URL")
	}
}

func TestUtils_ShouldFormatTime(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{time.Millisecond * 500, "0.50s"},
		{time.Second * 90, "1m 30.00s"},
		{time.Hour*2 + time.Minute*5, "2h 5m 0.00s"},
	}
	for _, tc := range testCases {
		if got := FormatTime(tc.d); got != tc.want {
			t.Errorf("duration %s expected to format as %q. Got %q", tc.d, tc.want, got)
		}
	}
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.png")
	// Minimal PNG header is enough for MIME sniffing.
	header := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}
	if err := os.WriteFile(path, header, 0644); err != nil {
		t.Fatalf("could not write the sample file: %v", err)
	}

	ftype, err := DetectFileContentType(path)
	if err != nil {
		t.Fatalf("could not detect content type: %v", err)
	}
	if !strings.Contains(ftype.(string), "image") {
		t.Errorf("Content type expected to be of type image, got: %v", ftype)
	}
}

func TestUtils_MinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 {
		t.Errorf("Min(3, 7) expected to be 3")
	}
	if Max(3, 7) != 7 {
		t.Errorf("Max(3, 7) expected to be 7")
	}
	if Abs(-5) != 5 {
		t.Errorf("Abs(-5) expected to be 5")
	}
}
