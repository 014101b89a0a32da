// =============================================================================
// VisIt Color Table Converter - Conversion Command Logic
// =============================================================================
//
// This file wires the conversion pipeline behind the root command.
//
// PROCESSING PIPELINE:
//   1. Load the optional configuration
//   2. Set up logging (stderr; --verbose forces debug)
//   3. Choose the table writers:
//      a. stdout, always
//      b. the YAML file, unless --dry-run
//      c. the spreadsheet, with --xlsx and without --dry-run
//   4. Run the converter
//
// =============================================================================

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xiaohunqupo/visit2ascent/internal/config"
	"github.com/xiaohunqupo/visit2ascent/internal/converter"
	"github.com/xiaohunqupo/visit2ascent/internal/logging"
	"github.com/xiaohunqupo/visit2ascent/internal/xlsxwriter"
	"github.com/xiaohunqupo/visit2ascent/internal/yamlwriter"
	"github.com/xiaohunqupo/visit2ascent/pkg/utils"
)

// runConvert converts the session file at sessionPath.
func runConvert(cmd *cobra.Command, opts *options, sessionPath string) error {
	// =========================================================================
	// STEP 1: LOAD CONFIGURATION
	// =========================================================================

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// =========================================================================
	// STEP 2: SET UP LOGGING
	// =========================================================================

	level := cfg.Level()
	if opts.verbose {
		level = logging.LevelDebug
	}
	logger := logging.New(cmd.ErrOrStderr(), level)

	// =========================================================================
	// STEP 3: CHOOSE TABLE WRITERS
	// =========================================================================

	outputPath := opts.output
	if outputPath == "" {
		outputPath = utils.DeriveOutputPath(sessionPath, cfg.OutputExtension)
	}

	writers := []converter.TableWriter{yamlwriter.NewStreamWriter(cmd.OutOrStdout())}
	var outputs []string
	if !opts.dryRun {
		if samePath(outputPath, sessionPath) {
			return fmt.Errorf("output path %s would overwrite the session file", outputPath)
		}
		writers = append(writers, yamlwriter.NewFileWriter(outputPath))
		outputs = append(outputs, outputPath)

		if opts.xlsx {
			xlsxPath := utils.DeriveOutputPath(outputPath, ".xlsx")
			writers = append(writers, xlsxwriter.NewFileWriter(xlsxPath))
			outputs = append(outputs, xlsxPath)
		}
	}

	// =========================================================================
	// STEP 4: RUN THE CONVERTER
	// =========================================================================

	result, err := converter.New(sessionPath, cfg, logger).Run(writers...)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", sessionPath, err)
	}
	if !result.Found {
		return nil
	}

	for _, path := range outputs {
		logger.Info("Wrote %d control point(s) to %s", len(result.Table.ControlPoints), path)
	}
	logger.Debug("Time elapsed: %s", result.ProcessingTime)

	return nil
}

// samePath reports whether a and b name the same file path.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
