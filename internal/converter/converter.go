// =============================================================================
// VisIt Color Table Converter - Converter Module
// =============================================================================
//
// This module orchestrates the conversion of a single session file.
//
// CONVERSION PIPELINE:
//   1. Load the session file into an element tree
//   2. Locate the ColorControlPointList node
//   3. Extract the control points into a color table
//   4. Check the table (findings are logged, never fatal)
//   5. Hand the table to every table writer (console, YAML file, ...)
//
// A session without a ColorControlPointList is not an error: the run ends
// with Result.Found set to false and no writer is called.
//
// =============================================================================

package converter

import (
	"fmt"
	"strings"
	"time"

	"github.com/xiaohunqupo/visit2ascent/internal/config"
	"github.com/xiaohunqupo/visit2ascent/internal/logging"
	"github.com/xiaohunqupo/visit2ascent/internal/sessionparser"
	"github.com/xiaohunqupo/visit2ascent/internal/types"
	"github.com/xiaohunqupo/visit2ascent/internal/validation"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result represents the outcome of converting a single session file.
type Result struct {
	// FilePath is the path to the session file that was converted.
	FilePath string

	// Found reports whether the target node exists in the session.
	Found bool

	// Table is the extracted color table. It is nil when Found is false.
	Table *types.ColorTable

	// Findings are the non-fatal table check results.
	Findings []*validation.ValidationError

	// ProcessingTime is the time taken by the run.
	ProcessingTime time.Duration
}

// TableWriter is a destination for an extracted color table.
type TableWriter interface {
	WriteTable(table *types.ColorTable) error
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts one session file.
type Converter struct {
	sessionPath string
	config      *config.Config
	logger      logging.Logger
}

// New creates a Converter for the session file at sessionPath. A nil logger
// discards all messages.
func New(sessionPath string, cfg *config.Config, logger logging.Logger) *Converter {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Converter{
		sessionPath: sessionPath,
		config:      cfg,
		logger:      logger,
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// Run executes the conversion pipeline and writes the table to every writer
// in order. The first writer error aborts the run.
func (c *Converter) Run(writers ...TableWriter) (*Result, error) {
	startTime := time.Now()
	result := &Result{FilePath: c.sessionPath}

	c.logger.Debug("Loading session file: %s", c.sessionPath)

	root, err := sessionparser.Load(c.sessionPath)
	if err != nil {
		return result, err
	}

	list := sessionparser.Locate(root, c.config.TargetNode)
	if list == nil {
		c.logger.Warn("failed to find %s entry in %s", c.config.TargetNode, c.sessionPath)
		result.ProcessingTime = time.Since(startTime)
		return result, nil
	}
	result.Found = true

	c.logger.Debug("Found %s", c.config.TargetNode)
	c.dumpSubtree(list)

	table, err := Extract(list, c.config)
	if err != nil {
		return result, fmt.Errorf("failed to extract control points: %w", err)
	}
	result.Table = table
	c.logger.Debug("Extracted %d control point(s)", len(table.ControlPoints))

	result.Findings = validation.Check(table)
	for _, finding := range result.Findings {
		c.logger.Debug("%s", finding.Error())
	}

	for _, w := range writers {
		if err := w.WriteTable(table); err != nil {
			return result, fmt.Errorf("failed to write color table: %w", err)
		}
	}

	result.ProcessingTime = time.Since(startTime)
	return result, nil
}

// dumpSubtree logs the structure of the located node at debug level.
func (c *Converter) dumpSubtree(list *sessionparser.Node) {
	var b strings.Builder
	if err := sessionparser.Dump(&b, list); err != nil {
		return
	}
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		c.logger.Debug("%s", line)
	}
}
