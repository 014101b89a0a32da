// =============================================================================
// VisIt Color Table Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - converter
//   - validation
//   - yamlwriter
//   - xlsxwriter
//
// =============================================================================

package types

// =============================================================================
// CONTROL POINT TYPES
// =============================================================================

// PointTypeRGB is the only control point variant produced by the converter.
// The Ascent color table format also knows "alpha" points.
const PointTypeRGB = "rgb"

// ControlPoint is one anchor of a piecewise color gradient.
type ControlPoint struct {
	// Type is the control point variant. Always PointTypeRGB.
	Type string

	// Position is the normalized progress along the table, typically 0.0-1.0.
	// The range is not enforced.
	Position float64

	// Color holds the R, G and B channels, each in [0.0, 1.0].
	Color [3]float64
}

// ColorTable is an ordered collection of control points.
type ColorTable struct {
	// Name identifies the table. The converter always produces "custom".
	Name string

	// ControlPoints are kept in the document order of their source objects.
	// Duplicate and non-monotonic positions are passed through unmodified.
	ControlPoints []ControlPoint
}
