// =============================================================================
// VisIt Color Table Converter - YAML Writer Module
// =============================================================================
//
// This module renders a color table as an Ascent color table description:
//
//   color_table:
//     control_points:
//       - type: "rgb"
//         position: 0.5
//         color: [1.0, 0.0, 0.0]
//
// NUMBER FORMAT:
//   Positions and channels use the shortest decimal text that reads back as
//   the same float64, always with a fractional part ("1.0", "0.5",
//   "0.00392156862745098"). The console and file copies are byte-identical.
//
// =============================================================================

package yamlwriter

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/xiaohunqupo/visit2ascent/internal/types"
	"github.com/xiaohunqupo/visit2ascent/pkg/utils"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// RENDER OPTIONS
// =============================================================================

// RenderOptions contains options for YAML rendering.
type RenderOptions struct {
	// Indent is the number of spaces per nesting level.
	// Default: 2
	Indent int
}

// DefaultRenderOptions returns the default rendering options.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Indent: 2}
}

// =============================================================================
// RENDER FUNCTIONS
// =============================================================================

// Render renders the table with the default options.
func Render(table *types.ColorTable) ([]byte, error) {
	return RenderWithOptions(table, DefaultRenderOptions())
}

// RenderWithOptions renders the table as a YAML document.
func RenderWithOptions(table *types.ColorTable, options RenderOptions) ([]byte, error) {
	var buffer bytes.Buffer

	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(options.Indent)

	if err := encoder.Encode(buildDocument(table)); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	return buffer.Bytes(), nil
}

// buildDocument constructs the node tree of the output document. Nodes are
// built by hand so the quoting and flow style of each value are fixed.
func buildDocument(table *types.ColorTable) *yaml.Node {
	points := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, point := range table.ControlPoints {
		points.Content = append(points.Content, buildControlPoint(point))
	}

	return &yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{
			mapping(
				key("color_table"), mapping(
					key("control_points"), points,
				),
			),
		},
	}
}

// buildControlPoint constructs one control point mapping.
func buildControlPoint(point types.ControlPoint) *yaml.Node {
	color := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
	for _, channel := range point.Color {
		color.Content = append(color.Content, float(channel))
	}

	return mapping(
		key("type"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: point.Type, Style: yaml.DoubleQuotedStyle},
		key("position"), float(point.Position),
		key("color"), color,
	)
}

func mapping(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}

func key(name string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
}

func float(v float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: FormatFloat(v)}
}

// FormatFloat returns the shortest round-trip decimal form of v with at
// least one fractional digit, or the YAML spelling of infinities and NaN.
func FormatFloat(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return ".inf"
	case math.IsInf(v, -1):
		return "-.inf"
	case math.IsNaN(v):
		return ".nan"
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// =============================================================================
// TABLE WRITERS
// =============================================================================

// StreamWriter writes rendered tables to an io.Writer, e.g. stdout.
type StreamWriter struct {
	out io.Writer
}

// NewStreamWriter creates a StreamWriter writing to out.
func NewStreamWriter(out io.Writer) *StreamWriter {
	return &StreamWriter{out: out}
}

// WriteTable renders table and writes it to the stream.
func (s *StreamWriter) WriteTable(table *types.ColorTable) error {
	data, err := Render(table)
	if err != nil {
		return err
	}
	if _, err := s.out.Write(data); err != nil {
		return fmt.Errorf("failed to write YAML: %w", err)
	}
	return nil
}

// FileWriter writes rendered tables to a file, replacing it atomically.
type FileWriter struct {
	// Path is the destination file.
	Path string
}

// NewFileWriter creates a FileWriter for path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{Path: path}
}

// WriteTable renders table and writes it to the file.
func (f *FileWriter) WriteTable(table *types.ColorTable) error {
	data, err := Render(table)
	if err != nil {
		return err
	}

	err = utils.WriteFileAtomic(f.Path, 0644, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Path, err)
	}
	return nil
}
