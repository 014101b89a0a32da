// =============================================================================
// VisIt Color Table Converter - Control Point Extractor
// =============================================================================
//
// This file turns a located ColorControlPointList subtree into a color table.
//
// EXTRACTION RULES:
//   - Every descendant <Object> named ColorControlPoint is a candidate, at any
//     depth, in document order.
//   - A candidate without a "colors" field is skipped.
//   - "colors" holds whitespace separated integers. Text that is not an
//     integer fails the whole run; a count other than 4 (R G B A) skips the
//     candidate silently. Alpha is parsed but not used.
//   - "position" is used as is when present. Otherwise the position is the
//     number of points collected so far divided by 10.
//   - Channels are normalized as value / 255.
//
// =============================================================================

package converter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xiaohunqupo/visit2ascent/internal/config"
	"github.com/xiaohunqupo/visit2ascent/internal/sessionparser"
	"github.com/xiaohunqupo/visit2ascent/internal/types"
)

// channelMax is the largest 8-bit channel value.
const channelMax = 255.0

// ParseError reports a control point field whose text is not a valid number.
type ParseError struct {
	// Field is the name of the offending field, e.g. "colors".
	Field string

	// Text is the token that failed to parse.
	Text string

	// Err is the underlying strconv error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s value %q: %v", e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Extract collects the control points found below list into a color table.
func Extract(list *sessionparser.Node, cfg *config.Config) (*types.ColorTable, error) {
	table := &types.ColorTable{
		Name:          cfg.TableName,
		ControlPoints: []types.ControlPoint{},
	}

	var err error
	list.Walk(func(n *sessionparser.Node, depth int) bool {
		// Only descendants qualify, not the list node itself.
		if depth == 0 {
			return true
		}
		if n.Tag != cfg.ObjectTag || n.EffectiveName() != cfg.ControlPointName {
			return true
		}

		var point types.ControlPoint
		var ok bool
		point, ok, err = extractPoint(n, len(table.ControlPoints), cfg)
		if err != nil {
			return false
		}
		if ok {
			table.ControlPoints = append(table.ControlPoints, point)
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	return table, nil
}

// extractPoint builds the control point described by obj. index is the
// number of points already collected and drives the default position. The
// boolean result is false when obj does not describe a usable point.
func extractPoint(obj *sessionparser.Node, index int, cfg *config.Config) (types.ControlPoint, bool, error) {
	colorsField := obj.Field(cfg.FieldTag, cfg.ColorsField)
	if colorsField == nil {
		return types.ControlPoint{}, false, nil
	}

	values, perr := parseInts(colorsField.Text)
	if perr != nil {
		perr.Field = cfg.ColorsField
		return types.ControlPoint{}, false, perr
	}
	// R G B A; anything else is not an RGBA control point.
	if len(values) != 4 {
		return types.ControlPoint{}, false, nil
	}
	r, g, b := values[0], values[1], values[2]

	position := float64(index) / cfg.PositionDivisor
	if positionField := obj.Field(cfg.FieldTag, cfg.PositionField); positionField != nil {
		text := strings.TrimSpace(positionField.Text)
		var err error
		position, err = strconv.ParseFloat(text, 64)
		if err != nil {
			return types.ControlPoint{}, false, &ParseError{Field: cfg.PositionField, Text: text, Err: err}
		}
	}

	return types.ControlPoint{
		Type:     types.PointTypeRGB,
		Position: position,
		Color: [3]float64{
			float64(r) / channelMax,
			float64(g) / channelMax,
			float64(b) / channelMax,
		},
	}, true, nil
}

// parseInts splits text on whitespace and parses every token as an integer.
func parseInts(text string) ([]int, *ParseError) {
	tokens := strings.Fields(text)
	values := make([]int, 0, len(tokens))
	for _, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, &ParseError{Text: token, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}
