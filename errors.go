package plotgeom

import "fmt"

// InvalidRangeError reports an axis range that cannot be mapped:
// min >= max on a fixed range, or non-positive bounds under log scale.
type InvalidRangeError struct {
	Min, Max float64
	Reason   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("plotgeom: invalid range [%g, %g]: %s", e.Min, e.Max, e.Reason)
}

// EmptyRangeError reports an auto-scaled range for which no data was
// observed, leaving nothing to substitute for the unset bound.
type EmptyRangeError struct{}

func (e *EmptyRangeError) Error() string {
	return "plotgeom: auto range with no observed data"
}

// DegenerateGeometryError reports a 3D projection that produced a
// non-finite result, typically from non-finite input coordinates.
type DegenerateGeometryError struct {
	X, Y, Z float64
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("plotgeom: projection of (%g, %g, %g) is not finite", e.X, e.Y, e.Z)
}
