// =============================================================================
// VisIt Color Table Converter - Configuration Module
// =============================================================================
//
// This module loads the optional converter configuration. Every setting has a
// built-in default matching the VisIt session layout, so the converter runs
// without any configuration file at all.
//
// CONFIGURATION FILE (all keys optional):
//   target_node: ColorControlPointList
//   control_point_name: ColorControlPoint
//   object_tag: Object
//   field_tag: Field
//   colors_field: colors
//   position_field: position
//   table_name: custom
//   output_extension: .yaml
//   position_divisor: 10
//   log_level: info
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/xiaohunqupo/visit2ascent/internal/logging"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the converter configuration.
type Config struct {
	// =========================================================================
	// SESSION LAYOUT
	// =========================================================================

	// TargetNode is the effective name of the node holding the control points.
	// Default: "ColorControlPointList"
	TargetNode string `yaml:"target_node"`

	// ControlPointName is the effective name of each control point object.
	// Default: "ColorControlPoint"
	ControlPointName string `yaml:"control_point_name"`

	// ObjectTag is the element tag of control point objects.
	// Default: "Object"
	ObjectTag string `yaml:"object_tag"`

	// FieldTag is the element tag of the fields inside an object.
	// Default: "Field"
	FieldTag string `yaml:"field_tag"`

	// ColorsField names the field holding the "R G B A" integers.
	// Default: "colors"
	ColorsField string `yaml:"colors_field"`

	// PositionField names the field holding the control point position.
	// Default: "position"
	PositionField string `yaml:"position_field"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// TableName is the name given to the extracted color table.
	// Default: "custom"
	TableName string `yaml:"table_name"`

	// OutputExtension replaces the session file extension in the output path.
	// Default: ".yaml"
	OutputExtension string `yaml:"output_extension"`

	// PositionDivisor computes missing positions as index / PositionDivisor.
	// Default: 10
	PositionDivisor float64 `yaml:"position_divisor"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *Config {
	var config Config
	applyDefaults(&config)
	return &config
}

// Load reads the configuration from a YAML file. An empty path yields the
// defaults without touching the filesystem.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(config *Config) {
	if config.TargetNode == "" {
		config.TargetNode = "ColorControlPointList"
	}
	if config.ControlPointName == "" {
		config.ControlPointName = "ColorControlPoint"
	}
	if config.ObjectTag == "" {
		config.ObjectTag = "Object"
	}
	if config.FieldTag == "" {
		config.FieldTag = "Field"
	}
	if config.ColorsField == "" {
		config.ColorsField = "colors"
	}
	if config.PositionField == "" {
		config.PositionField = "position"
	}
	if config.TableName == "" {
		config.TableName = "custom"
	}
	if config.OutputExtension == "" {
		config.OutputExtension = ".yaml"
	}
	if config.PositionDivisor == 0 {
		config.PositionDivisor = 10
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
}

// validate rejects settings the converter cannot work with.
func validate(config *Config) error {
	if !strings.HasPrefix(config.OutputExtension, ".") || len(config.OutputExtension) < 2 {
		return fmt.Errorf("output_extension %q must start with a dot", config.OutputExtension)
	}
	if config.PositionDivisor < 0 {
		return fmt.Errorf("position_divisor must be positive, got %v", config.PositionDivisor)
	}
	if _, err := logging.ParseLevel(config.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.LevelInfo
	}
	return level
}
