package text

import "golang.org/x/text/unicode/bidi"

// Direction is the base layout direction of a text run.
type Direction byte

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// DetectBase returns the base direction of s, decided by its first
// strong bidi run. Neutral or empty strings are LTR.
func DetectBase(s string) Direction {
	if s == "" {
		return DirectionLTR
	}

	p := bidi.Paragraph{}
	_, _ = p.SetString(s)

	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return DirectionLTR
	}
	run := ordering.Run(0)
	if run.Direction() == bidi.RightToLeft {
		return DirectionRTL
	}
	return DirectionLTR
}
