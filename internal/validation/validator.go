// =============================================================================
// VisIt Color Table Converter - Table Checks
// =============================================================================
//
// This module inspects an extracted color table and reports anything a
// renderer may handle surprisingly. The checks never change or reject the
// table: duplicate and out of order positions are legal and are passed
// through to the output unmodified.
//
// CHECKS:
//   - position_range : position outside [0, 1]
//   - monotonic      : position lower than the previous point's position
//   - channel_range  : color channel outside [0, 1] (source value outside 0-255)
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/xiaohunqupo/visit2ascent/internal/types"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// SeverityWarning marks findings that do not stop the conversion.
const SeverityWarning = "warning"

// ValidationError is a single finding about a control point.
type ValidationError struct {
	// Severity is always SeverityWarning for table checks.
	Severity string

	// Rule is the check that reported the finding.
	Rule string

	// Index is the zero-based index of the control point.
	Index int

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] control point %d (%s): %s",
		strings.ToUpper(e.Severity),
		e.Index,
		e.Rule,
		e.Message,
	)
}

// =============================================================================
// MAIN VALIDATION FUNCTION
// =============================================================================

// Check runs every table check and returns the findings in control point order.
func Check(table *types.ColorTable) []*ValidationError {
	var findings []*ValidationError

	for i, point := range table.ControlPoints {
		if point.Position < 0 || point.Position > 1 {
			findings = append(findings, warn(i, "position_range",
				fmt.Sprintf("position %v is outside [0, 1]", point.Position)))
		}

		if i > 0 && point.Position < table.ControlPoints[i-1].Position {
			findings = append(findings, warn(i, "monotonic",
				fmt.Sprintf("position %v is lower than the previous position %v",
					point.Position, table.ControlPoints[i-1].Position)))
		}

		for c, value := range point.Color {
			if value < 0 || value > 1 {
				findings = append(findings, warn(i, "channel_range",
					fmt.Sprintf("channel %d value %v is outside [0, 1]", c, value)))
			}
		}
	}

	return findings
}

func warn(index int, rule, message string) *ValidationError {
	return &ValidationError{
		Severity: SeverityWarning,
		Rule:     rule,
		Index:    index,
		Message:  message,
	}
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats findings for display or logging.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation findings."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Validation completed with %d finding(s):\n", len(errors)))
	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}
	return builder.String()
}
