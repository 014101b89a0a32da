// =============================================================================
// VisIt Color Table Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The converter has a
// single job, so the root command itself performs the conversion:
//
//   visit2ascent <session_file> [flags]
//
// EXIT STATUS:
//   0 - conversion done, or no ColorControlPointList in the session (warning)
//   1 - wrong argument count or unknown flag (usage printed to stdout)
//   1 - any other failure (printed to stderr as "Error: ...")
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// usageLine is printed to stdout on usage errors.
const usageLine = "usage: visit2ascent <session_file>"

// =============================================================================
// COMMAND OPTIONS
// =============================================================================

// options holds the flag values of one command invocation.
type options struct {
	// configFile is the path to the optional configuration file.
	configFile string

	// verbose enables debug logging, including the located subtree.
	verbose bool

	// output overrides the derived YAML output path.
	output string

	// dryRun prints the table to stdout without writing any file.
	dryRun bool

	// xlsx also writes a spreadsheet next to the YAML output.
	xlsx bool
}

// usageError marks command line mistakes. reason may be empty.
type usageError struct {
	reason string
}

func (e *usageError) Error() string {
	if e.reason == "" {
		return "invalid usage"
	}
	return e.reason
}

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// NewRootCommand builds the root command with fresh flag state.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "visit2ascent <session_file>",
		Short: "Convert a VisIt session color table to an Ascent color table",
		Long: `visit2ascent reads a VisIt session file, finds its ColorControlPointList
and writes the control points as an Ascent color table.

The table is printed to stdout and written next to the session file with its
last extension replaced by .yaml (colors.session.ct -> colors.session.yaml).

Example Usage:
  visit2ascent hot_desaturated.ct          # writes hot_desaturated.yaml
  visit2ascent run.session --dry-run       # print only
  visit2ascent run.session -o table.yaml   # choose the output path
  visit2ascent run.session --xlsx -v       # also write run.xlsx, debug logs`,

		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{}
			}
			return nil
		},

		// Errors and usage are reported by execute.
		SilenceErrors: true,
		SilenceUsage:  true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, opts, args[0])
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{reason: err.Error()}
	})

	// ==========================================================================
	// FLAGS
	// ==========================================================================

	rootCmd.Flags().StringVar(
		&opts.configFile,
		"config",
		"",
		"Path to an optional YAML configuration file",
	)

	rootCmd.Flags().BoolVarP(
		&opts.verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)

	rootCmd.Flags().StringVarP(
		&opts.output,
		"output",
		"o",
		"",
		"Output YAML path (default: session path with its extension replaced)",
	)

	rootCmd.Flags().BoolVar(
		&opts.dryRun,
		"dry-run",
		false,
		"Print the color table without writing output files",
	)

	rootCmd.Flags().BoolVar(
		&opts.xlsx,
		"xlsx",
		false,
		"Also write the color table to an .xlsx spreadsheet",
	)

	setVersion(rootCmd)

	return rootCmd
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the CLI with the process arguments and exits with its status.
// This is called by main.main().
func Execute() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and maps its outcome to an exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		if uerr.reason != "" {
			fmt.Fprintf(stderr, "Error: %s\n", uerr.reason)
		}
		fmt.Fprintln(stdout, usageLine)
		return 1
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
