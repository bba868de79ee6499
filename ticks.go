package plotgeom

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Tick is a single tick mark on an axis. Position is in data units.
// Minor ticks carry no label.
type Tick struct {
	Position float64
	Label    string
	Minor    bool
}

// TickSet is an ordered sequence of ticks for one axis, strictly
// monotonic in position. On a reversed axis positions still ascend;
// the viewport mapping flips them on screen.
type TickSet []Tick

// Majors returns the ticks that carry labels.
func (ts TickSet) Majors() TickSet {
	out := make(TickSet, 0, len(ts))
	for _, t := range ts {
		if !t.Minor {
			out = append(out, t)
		}
	}
	return out
}

// niceMultipliers are the allowed tick-step mantissas. The raw step is
// rounded up to the smallest nice multiple of its power of ten.
var niceMultipliers = [...]float64{1, 2, 2.5, 5, 10}

// NiceStep rounds raw up to the nearest nice value
// {1, 2, 2.5, 5, 10} x 10^k. Non-positive input returns 0.
func NiceStep(raw float64) float64 {
	if raw <= 0 || math.IsInf(raw, 0) || math.IsNaN(raw) {
		return 0
	}
	power := math.Pow(10, math.Floor(math.Log10(raw)))
	mant := raw / power
	for _, nice := range niceMultipliers {
		if nice >= mant-1e-9 {
			return nice * power
		}
	}
	return 10 * power
}

// DefaultTickTarget is the tick density used when a PlotSpec leaves the
// per-axis target count at zero.
const DefaultTickTarget = 5

// GenerateTicks computes tick positions and labels for a resolved
// range. targetCount is the desired number of intervals; the actual
// tick count lands near it but not exactly on it, since steps snap to
// nice numbers. targetCount <= 0 yields an empty set (valid for
// secondary axes). A degenerate (padded point) range yields exactly
// one tick at its center.
func GenerateTicks(r ResolvedRange, targetCount int) (TickSet, error) {
	return DefaultTickFormat.Generate(r, targetCount)
}

// GenerateTicksWithMinor is GenerateTicks with minorPerInterval
// unlabeled minor ticks interleaved between consecutive majors.
// Only linear ranges take minors this way; log ranges place their own.
func GenerateTicksWithMinor(r ResolvedRange, targetCount, minorPerInterval int) (TickSet, error) {
	majors, err := GenerateTicks(r, targetCount)
	if err != nil || minorPerInterval <= 0 || r.Scale != ScaleLinear || len(majors) < 2 {
		return majors, err
	}

	step := majors[1].Position - majors[0].Position
	minorStep := step / float64(minorPerInterval+1)
	eps := step * 1e-9

	out := make(TickSet, 0, len(majors)*(minorPerInterval+1))
	for i, m := range majors {
		out = append(out, m)
		if i == len(majors)-1 {
			break
		}
		next := majors[i+1].Position
		for j := 1; j <= minorPerInterval; j++ {
			pos := m.Position + float64(j)*minorStep
			if pos < next-eps {
				out = append(out, Tick{Position: pos, Minor: true})
			}
		}
	}
	return out, nil
}

// CustomTicks builds a tick set from explicit positions. labels may be
// nil, in which case labels are formatted from the average spacing; a
// non-nil labels slice must match positions in length.
func CustomTicks(positions []float64, labels []string) (TickSet, error) {
	if len(positions) == 0 {
		return nil, nil
	}
	if labels != nil && len(labels) != len(positions) {
		return nil, fmt.Errorf("plotgeom: %d labels for %d tick positions", len(labels), len(positions))
	}

	idx := make([]int, len(positions))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return positions[idx[a]] < positions[idx[b]] })

	step := 1.0
	if n := len(positions); n > 1 {
		step = (positions[idx[n-1]] - positions[idx[0]]) / float64(n-1)
	}

	out := make(TickSet, 0, len(positions))
	for _, i := range idx {
		label := ""
		if labels != nil {
			label = labels[i]
		} else {
			label = DefaultTickFormat.Format(positions[i], step)
		}
		out = append(out, Tick{Position: positions[i], Label: label})
	}
	return out, nil
}

// TickFormat controls tick label rendering. Values whose magnitude
// reaches SciUpper or falls below SciLower (but is nonzero) switch to
// scientific notation.
type TickFormat struct {
	SciUpper float64
	SciLower float64
}

// DefaultTickFormat matches the reference tool's label behavior.
var DefaultTickFormat = TickFormat{SciUpper: 1e6, SciLower: 1e-4}

// Generate computes the tick set for a resolved range using this
// format. See GenerateTicks.
func (f TickFormat) Generate(r ResolvedRange, targetCount int) (TickSet, error) {
	if targetCount <= 0 {
		return nil, nil
	}
	if r.Degenerate {
		step := math.Abs(r.Center)
		if step == 0 {
			step = 1
		}
		return TickSet{{Position: r.Center, Label: f.Format(r.Center, step)}}, nil
	}
	if r.Scale == ScaleLog {
		return f.generateLog(r, targetCount)
	}
	return f.generateLinear(r, targetCount)
}

func (f TickFormat) generateLinear(r ResolvedRange, targetCount int) (TickSet, error) {
	lo, hi := r.Lo(), r.Hi()
	step := NiceStep((hi - lo) / float64(targetCount))
	if step == 0 {
		return nil, &InvalidRangeError{Min: r.Min, Max: r.Max, Reason: "cannot derive tick step"}
	}

	eps := step * 1e-9
	pos := math.Ceil((lo-eps)/step) * step

	var out TickSet
	for ; pos <= hi+eps; pos += step {
		p := pos
		if p == 0 {
			p = math.Abs(p) // fold -0
		}
		out = append(out, Tick{Position: p, Label: f.Format(p, step)})
	}
	return out, nil
}

// generateLog places major ticks at powers of ten inside the range,
// with minor ticks at the 2x and 5x multiples when the decade count
// leaves room for them.
func (f TickFormat) generateLog(r ResolvedRange, targetCount int) (TickSet, error) {
	lo, hi := r.Lo(), r.Hi()
	if lo <= 0 {
		return nil, &InvalidRangeError{Min: r.Min, Max: r.Max, Reason: "log scale requires positive bounds"}
	}

	first := int(math.Floor(math.Log10(lo) + 1e-9))
	last := int(math.Ceil(math.Log10(hi) - 1e-9))
	includeMinor := last-first <= targetCount/2

	eps := 1e-9
	inRange := func(v float64) bool {
		return v >= lo*(1-eps) && v <= hi*(1+eps)
	}

	var out TickSet
	for p := first; p <= last; p++ {
		decade := math.Pow(10, float64(p))
		if inRange(decade) {
			out = append(out, Tick{Position: decade, Label: logLabel(p)})
		}
		if includeMinor {
			for _, mult := range [...]float64{2, 5} {
				if v := decade * mult; inRange(v) {
					out = append(out, Tick{Position: v, Minor: true})
				}
			}
		}
	}
	return out, nil
}

// logLabel renders a power-of-ten label the way the reference tool
// does: 1, 10, then 10^k.
func logLabel(power int) string {
	switch power {
	case 0:
		return "1"
	case 1:
		return "10"
	default:
		return fmt.Sprintf("10^%d", power)
	}
}

// Format renders a tick value using the fewest digits that distinguish
// ticks step apart. Integers drop their decimals; trailing zeros after
// the decimal point are trimmed.
func (f TickFormat) Format(value, step float64) string {
	if math.Abs(value) < step*1e-3 {
		return "0"
	}

	abs := math.Abs(value)
	if abs >= f.SciUpper || (f.SciLower > 0 && abs < f.SciLower) {
		return strconv.FormatFloat(value, 'e', -1, 64)
	}

	if rounded := math.Round(value); math.Abs(value-rounded) < 1e-9 {
		return strconv.FormatInt(int64(rounded), 10)
	}

	s := strconv.FormatFloat(value, 'f', stepDecimals(step), 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// stepDecimals returns the decimal places needed to represent a tick
// step exactly, capped at 9.
func stepDecimals(step float64) int {
	step = math.Abs(step)
	for d := 0; d <= 9; d++ {
		scaled := step * math.Pow(10, float64(d))
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(scaled, 1) {
			return d
		}
	}
	return 9
}
