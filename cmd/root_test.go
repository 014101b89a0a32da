package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xiaohunqupo/visit2ascent/pkg/utils"
)

const sessionWithTable = `<?xml version="1.0"?>
<Object name="VisIt">
  <Object name="ColorTableAttributes">
    <Object name="ColorControlPointList">
      <Object name="ColorControlPoint">
        <Field name="colors" type="unsignedCharArray" length="4">255 0 0 255</Field>
        <Field name="position" type="float">0.5</Field>
      </Object>
    </Object>
  </Object>
</Object>
`

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	if args == nil {
		args = []string{}
	}
	code := execute(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"two arguments", []string{"a.ct", "b.ct"}},
		{"unknown flag", []string{"a.ct", "--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := run(t, tt.args...)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if strings.TrimSpace(stdout) != usageLine {
				t.Errorf("stdout = %q, want the usage line", stdout)
			}
		})
	}
}

func TestConvertWritesConsoleAndFile(t *testing.T) {
	session := writeFile(t, "colors.session.ct", sessionWithTable)

	code, stdout, stderr := run(t, session)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}

	for _, want := range []string{"color_table:", `type: "rgb"`, "position: 0.5", "color: [1.0, 0.0, 0.0]"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	outPath := filepath.Join(filepath.Dir(session), "colors.session.yaml")
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file: %v", err)
	}
	if string(data) != stdout {
		t.Errorf("file copy differs from console copy:\n%s\n---\n%s", data, stdout)
	}
	if !strings.Contains(stderr, "[INFO] Wrote 1 control point(s) to "+outPath) {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestConvertNotFound(t *testing.T) {
	session := writeFile(t, "empty.session", `<Object name="VisIt"><Field name="Version">3.1.0</Field></Object>`)

	code, stdout, stderr := run(t, session)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "failed to find ColorControlPointList entry in "+session) {
		t.Errorf("stderr = %q, want the not-found warning", stderr)
	}
	if utils.FileExists(utils.DeriveOutputPath(session, ".yaml")) {
		t.Error("no output file should be written")
	}
}

func TestConvertFatalErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"malformed xml", `<Object name="VisIt">`, "failed to parse"},
		{"malformed colors", strings.Replace(sessionWithTable, "255 0 0 255", "255 0 O 255", 1), `invalid colors value "O"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := writeFile(t, "bad.ct", tt.body)

			code, _, stderr := run(t, session)
			if code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.HasPrefix(stderr, "Error: ") || !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want an error mentioning %q", stderr, tt.want)
			}
			if utils.FileExists(utils.DeriveOutputPath(session, ".yaml")) {
				t.Error("no output file should be written")
			}
		})
	}
}

func TestConvertDryRun(t *testing.T) {
	session := writeFile(t, "colors.ct", sessionWithTable)

	code, stdout, _ := run(t, session, "--dry-run", "--xlsx")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "color_table:") {
		t.Errorf("stdout = %q", stdout)
	}

	entries, err := os.ReadDir(filepath.Dir(session))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dry run wrote files: %v", entries)
	}
}

func TestConvertOutputFlagAndSpreadsheet(t *testing.T) {
	session := writeFile(t, "colors.ct", sessionWithTable)
	outPath := filepath.Join(t.TempDir(), "table.yaml")

	code, _, stderr := run(t, session, "-o", outPath, "--xlsx")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if !utils.FileExists(outPath) {
		t.Error("YAML output missing")
	}
	if !utils.FileExists(utils.DeriveOutputPath(outPath, ".xlsx")) {
		t.Error("spreadsheet output missing")
	}
}

func TestConvertRefusesToOverwriteSession(t *testing.T) {
	session := writeFile(t, "colors.yaml", sessionWithTable)

	code, _, stderr := run(t, session)
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "would overwrite the session file") {
		t.Errorf("stderr = %q", stderr)
	}

	data, _ := os.ReadFile(session)
	if string(data) != sessionWithTable {
		t.Error("session file was modified")
	}
}

func TestConvertVerboseDumpsSubtree(t *testing.T) {
	session := writeFile(t, "colors.ct", sessionWithTable)

	code, _, stderr := run(t, session, "-v", "--dry-run")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stderr, "[DEBUG] Object: ColorControlPointList") {
		t.Errorf("stderr missing subtree dump:\n%s", stderr)
	}
}

func TestConvertWithConfig(t *testing.T) {
	session := writeFile(t, "colors.ct", sessionWithTable)
	cfg := writeFile(t, "config.yaml", "output_extension: .yml\nlog_level: error\n")

	code, _, stderr := run(t, session, "--config", cfg)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, stderr)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want nothing at error level", stderr)
	}
	if !utils.FileExists(utils.DeriveOutputPath(session, ".yml")) {
		t.Error("output with configured extension missing")
	}
}

func TestVersionFlag(t *testing.T) {
	code, stdout, _ := run(t, "--version")
	if code != 0 {
		t.Fatalf("exit code = %d", code)
	}
	if !strings.Contains(stdout, "Version:    "+Version) {
		t.Errorf("stdout = %q", stdout)
	}
}
