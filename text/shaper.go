package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
)

// gotextOnce guards one-time parsing of the embedded font for the
// go-text pipeline. font.Font is read-only and safe for concurrent use.
var gotextOnce struct {
	sync.Once
	font *font.Font
	err  error
}

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
// internal mutable state and is NOT safe for concurrent use, so each
// measurement borrows its own instance.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

func gotextFont() (*font.Font, error) {
	gotextOnce.Do(func() {
		face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
		if err != nil {
			gotextOnce.err = err
			return
		}
		gotextOnce.font = face.Font
	})
	if gotextOnce.err != nil {
		return nil, fmt.Errorf("text: parse embedded font: %w", gotextOnce.err)
	}
	return gotextOnce.font, nil
}

// MeasureShaped returns the shaped advance width of s at the given font
// size in pixels, using HarfBuzz shaping. Unlike Measure, the result
// includes kerning and ligature substitution.
func MeasureShaped(s string, size float64) (float64, error) {
	if s == "" || size <= 0 {
		return 0, nil
	}
	f, err := gotextFont()
	if err != nil {
		return 0, err
	}

	// font.Face wraps the thread-safe *Font with per-use glyph caches;
	// it is cheap to create and must not be shared across goroutines.
	face := font.NewFace(f)

	runes := []rune(s)
	dir := di.DirectionLTR
	if DetectBase(s) == DirectionRTL {
		dir = di.DirectionRTL
	}

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	shaperPool.Put(shaper)

	return fixedToFloat(output.Advance), nil
}

// detectScript returns the script of the first non-space rune.
// Mixed-script labels are rare on plots; callers wanting exact runs
// should split them before measuring.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
