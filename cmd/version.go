// =============================================================================
// VisIt Color Table Converter - Version Flag
// =============================================================================
//
// This file wires the --version flag, which displays the application version
// and build information.
//
// OUTPUT:
//   visit2ascent
//   Version:    1.0.0
//   Build Date: 2024-01-01
//   Go Version: go1.24.0
//
// =============================================================================

package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// These variables are set at build time using ldflags.
// Example build command:
//   go build -ldflags "-X 'github.com/xiaohunqupo/visit2ascent/cmd.Version=1.0.0'"

// Version is the application version.
var Version = "1.0.0"

// BuildDate is the date the application was built.
var BuildDate = "unknown"

// setVersion enables the --version flag on cmd.
func setVersion(cmd *cobra.Command) {
	cmd.Version = Version
	cmd.SetVersionTemplate(fmt.Sprintf("visit2ascent\nVersion:    %s\nBuild Date: %s\nGo Version: %s\n",
		Version, BuildDate, runtime.Version()))
}
