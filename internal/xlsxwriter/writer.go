// =============================================================================
// VisIt Color Table Converter - XLSX Writer Module
// =============================================================================
//
// This module writes a color table to a spreadsheet for review. The sheet is
// named after the table and holds one row per control point:
//
//   | Type | Position | R | G | B | Swatch |
//   | rgb  | 0.5      | 1 | 0 | 0 | (red)  |
//
// The Swatch cell is filled with the control point color.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/xiaohunqupo/visit2ascent/internal/types"
	"github.com/xiaohunqupo/visit2ascent/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize creates in a new workbook.
const defaultSheet = "Sheet1"

// maxSheetNameLength is the Excel limit on sheet names.
const maxSheetNameLength = 31

// header is the first row of the sheet.
var header = []interface{}{"Type", "Position", "R", "G", "B", "Swatch"}

// FileWriter writes color tables to an .xlsx file.
type FileWriter struct {
	// Path is the destination file.
	Path string
}

// NewFileWriter creates a FileWriter for path.
func NewFileWriter(path string) *FileWriter {
	return &FileWriter{Path: path}
}

// WriteTable builds the workbook and writes it to the file.
func (fw *FileWriter) WriteTable(table *types.ColorTable) error {
	f, err := Build(table)
	if err != nil {
		return err
	}
	defer f.Close()

	err = utils.WriteFileAtomic(fw.Path, 0644, func(w io.Writer) error {
		return f.Write(w)
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", fw.Path, err)
	}
	return nil
}

// Build creates the workbook for table. The caller must close it.
func Build(table *types.ColorTable) (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := SheetName(table.Name)
	if err := f.SetSheetName(defaultSheet, sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, point := range table.ControlPoints {
		if err := writePoint(f, sheet, i+2, point); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write control point %d: %w", i, err)
		}
	}

	return f, nil
}

// writePoint writes one control point on the given 1-based row.
func writePoint(f *excelize.File, sheet string, row int, point types.ControlPoint) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	values := []interface{}{point.Type, point.Position, point.Color[0], point.Color[1], point.Color[2]}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return err
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{HexColor(point.Color)}},
	})
	if err != nil {
		return err
	}
	swatch, err := excelize.CoordinatesToCellName(len(header), row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, swatch, swatch, style)
}

// SheetName turns a table name into a valid sheet name.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))

	if name == "" {
		return defaultSheet
	}
	if runes := []rune(name); len(runes) > maxSheetNameLength {
		name = string(runes[:maxSheetNameLength])
	}
	return name
}

// HexColor returns the "RRGGBB" form of normalized channels, clamped to 0-255.
func HexColor(color [3]float64) string {
	var b strings.Builder
	for _, channel := range color {
		v := math.Round(channel * 255)
		if math.IsNaN(v) || v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		fmt.Fprintf(&b, "%02X", int(v))
	}
	return b.String()
}
