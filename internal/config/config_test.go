package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xiaohunqupo/visit2ascent/internal/logging"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TargetNode != "ColorControlPointList" {
		t.Errorf("TargetNode = %q", cfg.TargetNode)
	}
	if cfg.ControlPointName != "ColorControlPoint" || cfg.ObjectTag != "Object" || cfg.FieldTag != "Field" {
		t.Errorf("unexpected layout defaults: %+v", cfg)
	}
	if cfg.ColorsField != "colors" || cfg.PositionField != "position" {
		t.Errorf("unexpected field defaults: %+v", cfg)
	}
	if cfg.TableName != "custom" || cfg.OutputExtension != ".yaml" || cfg.PositionDivisor != 10 {
		t.Errorf("unexpected output defaults: %+v", cfg)
	}
	if cfg.Level() != logging.LevelInfo {
		t.Errorf("Level() = %v, want INFO", cfg.Level())
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, "table_name: fire\noutput_extension: .yml\nlog_level: debug\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TableName != "fire" || cfg.OutputExtension != ".yml" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Level() != logging.LevelDebug {
		t.Errorf("Level() = %v, want DEBUG", cfg.Level())
	}
	if cfg.TargetNode != "ColorControlPointList" {
		t.Errorf("default TargetNode lost: %q", cfg.TargetNode)
	}
}

func TestLoadRejectsInvalidSettings(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"extension without dot", "output_extension: yaml\n", "output_extension"},
		{"negative divisor", "position_divisor: -2\n", "position_divisor"},
		{"unknown level", "log_level: chatty\n", "log level"},
		{"malformed yaml", "table_name: [\n", "failed to parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
}
