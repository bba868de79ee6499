package plotgeom

// Layout constants of the reference tool. These are process-wide
// immutable configuration: they are never mutated after startup and
// concurrent renders read them freely.
const (
	// tickMarkLength is the on-screen length of a major tick mark.
	tickMarkLength = 5.0

	// minorTickScale shortens minor tick marks relative to majors.
	minorTickScale = 0.5

	// axisLabelClearance separates tick labels from the axis line.
	axisLabelClearance = 8.0

	// axisTitleClearance separates an axis title from its tick labels.
	axisTitleClearance = 28.0

	// axisLabelOffset3D pushes projected tick labels outward along the
	// screen-space normal of the axis line.
	axisLabelOffset3D = 15.0

	// defaultFontSize is the label font size in pixels.
	defaultFontSize = 12.0

	// defaultMarkerSize is the marker extent in pixels.
	defaultMarkerSize = 6.0

	// legendPadding is the inset between legend border and content.
	legendPadding = 6.0

	// legendSampleLength is the width of the line sample drawn before
	// each legend label.
	legendSampleLength = 30.0

	// legendSampleGap separates the sample from its label.
	legendSampleGap = 6.0

	// legendEntryGap separates consecutive entries.
	legendEntryGap = 4.0

	// legendInset keeps the legend box off the plot border.
	legendInset = 10.0
)
