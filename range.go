package plotgeom

import "math"

// ScaleType selects the axis scale.
type ScaleType byte

const (
	ScaleLinear ScaleType = iota
	ScaleLog
)

func (s ScaleType) String() string {
	if s == ScaleLog {
		return "log"
	}
	return "linear"
}

// AxisRange is the declarative range of one axis before resolution.
// Ends flagged auto are substituted from observed data extrema;
// Reversed flips the axis direction after resolution so that mapping
// draws the axis high-to-low.
type AxisRange struct {
	Min, Max         float64
	AutoMin, AutoMax bool
	Reversed         bool
	Scale            ScaleType
}

// AutoRange returns a linear range with both ends auto-scaled.
func AutoRange() AxisRange {
	return AxisRange{AutoMin: true, AutoMax: true}
}

// FixedRange returns a linear range with both ends fixed.
func FixedRange(min, max float64) AxisRange {
	return AxisRange{Min: min, Max: max}
}

// DataExtent carries the min/max actually observed in the series data
// for one axis, computed by the (external) data layer. Valid is false
// when no finite data point was seen.
type DataExtent struct {
	Min, Max float64
	Valid    bool
}

// Extent is a convenience constructor for a valid DataExtent.
func Extent(min, max float64) DataExtent {
	return DataExtent{Min: min, Max: max, Valid: true}
}

// ResolvedRange is an axis range with concrete numeric bounds.
// The pair is direction-carrying: Min > Max on a reversed axis, and the
// signed width flows through normalization so downstream mapping
// preserves the inversion. Degenerate marks a point range that was
// padded to a nonzero width; Center holds the original value.
type ResolvedRange struct {
	Min, Max   float64
	Scale      ScaleType
	Degenerate bool
	Center     float64
}

// Width returns the signed width Max - Min.
func (r ResolvedRange) Width() float64 { return r.Max - r.Min }

// Lo returns the smaller bound regardless of direction.
func (r ResolvedRange) Lo() float64 { return math.Min(r.Min, r.Max) }

// Hi returns the larger bound regardless of direction.
func (r ResolvedRange) Hi() float64 { return math.Max(r.Min, r.Max) }

// Normalize maps v into [-1, 1] across the range. Values outside the
// range extrapolate linearly. On a reversed range the mapping flips.
func (r ResolvedRange) Normalize(v float64) float64 {
	return 2*(v-r.Min)/(r.Max-r.Min) - 1
}

// degenerateEpsilon is the relative padding applied to zero-width
// ranges; degenerateMinPad is the absolute padding when the value
// itself is zero.
const (
	degenerateEpsilon = 1e-3
	degenerateMinPad  = 1e-3
)

// Resolve produces concrete bounds for the range. Auto ends take the
// observed extremum; fixed ends keep their value. The returned pair is
// direction-carrying when the range is Reversed.
//
// Failure cases: a fixed range with min >= max or a log range touching
// zero yields *InvalidRangeError; an auto end with no observed data
// yields *EmptyRangeError. A resolved point range (min == max) is
// padded symmetrically so mapping never divides by zero, and the
// result is flagged Degenerate.
func (r AxisRange) Resolve(observed DataExtent) (ResolvedRange, error) {
	min, max := r.Min, r.Max
	if r.AutoMin {
		if !observed.Valid {
			return ResolvedRange{}, &EmptyRangeError{}
		}
		min = observed.Min
	}
	if r.AutoMax {
		if !observed.Valid {
			return ResolvedRange{}, &EmptyRangeError{}
		}
		max = observed.Max
	}

	if min > max {
		return ResolvedRange{}, &InvalidRangeError{Min: min, Max: max, Reason: "min greater than max"}
	}
	if r.Scale == ScaleLog && min <= 0 {
		return ResolvedRange{}, &InvalidRangeError{Min: min, Max: max, Reason: "log scale requires positive bounds"}
	}

	res := ResolvedRange{Min: min, Max: max, Scale: r.Scale}

	if min == max {
		pad := math.Abs(min) * degenerateEpsilon
		if pad == 0 {
			pad = degenerateMinPad
		}
		res.Min = min - pad
		res.Max = max + pad
		res.Degenerate = true
		res.Center = min
		if r.Scale == ScaleLog && res.Min <= 0 {
			// Keep the padded lower bound positive.
			res.Min = min / 2
		}
	}

	if r.Reversed {
		res.Min, res.Max = res.Max, res.Min
	}
	return res, nil
}

// RoundOutward extends the bounds to the enclosing multiples of step:
// the low bound rounds down, the high bound rounds up. Direction is
// preserved. A non-positive step returns the range unchanged.
func RoundOutward(r ResolvedRange, step float64) ResolvedRange {
	if step <= 0 || r.Degenerate {
		return r
	}
	lo := math.Floor(r.Lo()/step) * step
	hi := math.Ceil(r.Hi()/step) * step
	out := r
	if r.Min <= r.Max {
		out.Min, out.Max = lo, hi
	} else {
		out.Min, out.Max = hi, lo
	}
	return out
}
