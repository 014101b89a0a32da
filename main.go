// =============================================================================
// VisIt Color Table Converter - Main Entry Point
// =============================================================================
//
// This is the main entry point for the visit2ascent CLI application. It
// initializes the Cobra CLI framework and delegates command execution to the
// cmd package.
//
// USAGE:
//   visit2ascent <session_file>           - Convert the color table to YAML
//   visit2ascent <session_file> --xlsx    - Also write a spreadsheet copy
//   visit2ascent --version                - Display the application version
//
// ARCHITECTURE:
//   cmd/                     : CLI command definitions (Cobra)
//   internal/sessionparser   : XML tree loader and node locator
//   internal/converter       : control point extraction and pipeline
//   internal/yamlwriter      : YAML rendering and console/file sinks
//   internal/xlsxwriter      : optional spreadsheet sink
//   internal/validation      : non-fatal checks on extracted tables
//   internal/config          : optional YAML configuration
//   internal/logging         : leveled logger
//   pkg/utils                : output path and file helpers
//
// =============================================================================

package main

import (
	"github.com/xiaohunqupo/visit2ascent/cmd"
)

// main is the entry point of the application.
func main() {
	cmd.Execute()
}
