package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// parseOnce guards one-time parsing of the embedded Go Regular font.
// The parsed *opentype.Font is read-only and safe for concurrent use;
// faces derived from it are not, so each measurement builds its own.
var parseOnce struct {
	sync.Once
	font *opentype.Font
	err  error
}

func defaultFont() (*opentype.Font, error) {
	parseOnce.Do(func() {
		parseOnce.font, parseOnce.err = opentype.Parse(goregular.TTF)
	})
	if parseOnce.err != nil {
		return nil, fmt.Errorf("text: parse embedded font: %w", parseOnce.err)
	}
	return parseOnce.font, nil
}

// Measure returns the advance width and line height of s at the given
// font size in pixels. Empty strings measure as (0, line height);
// a non-positive size measures as (0, 0).
func Measure(s string, size float64) (width, height float64) {
	if size <= 0 {
		return 0, 0
	}
	f, err := defaultFont()
	if err != nil {
		return 0, 0
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return 0, 0
	}
	defer func() {
		_ = face.Close()
	}()

	height = fixedToFloat(face.Metrics().Height)
	if s == "" {
		return 0, height
	}
	width = fixedToFloat(font.MeasureString(face, s))
	return width, height
}

// floatToFixed converts a float64 font size to fixed.Int26_6.
// The fixed-point representation uses 6 fractional bits.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
