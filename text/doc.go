// Package text provides the label metrics used by the plot compositor.
//
// The engine needs text extents in two places: sizing the legend box
// around the widest series label, and checking whether a layout element
// fits its plot area. Two measurement paths are provided:
//
//   - Measure: advance width and line height from an opentype face of
//     the embedded Go Regular font (golang.org/x/image). This is the
//     default and is always available.
//   - MeasureShaped: HarfBuzz-shaped advance via go-text/typesetting,
//     which accounts for kerning and ligatures. Used for legend sizing
//     where a few pixels matter; falls back to Measure on error.
//
// DetectBase inspects a string's bidi runs to decide whether a label
// should be laid out left-to-right or right-to-left.
//
// All functions are safe for concurrent use.
package text
