// =============================================================================
// VisIt Color Table Converter - File Utilities
// =============================================================================
//
// This module provides the file helpers used by the output writers:
//   - Output path derivation from the session file path
//   - Atomic file writes (temp file, sync, rename)
//
// =============================================================================

package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// DeriveOutputPath replaces the last extension of the input file name with
// ext. Only the final extension is stripped, and dots in directory names are
// ignored. A name without an extension gets ext appended.
//
// EXAMPLES:
//   DeriveOutputPath("foo.session.ct", ".yaml") -> "foo.session.yaml"
//   DeriveOutputPath("runs.v2/colors", ".yaml") -> "runs.v2/colors.yaml"
func DeriveOutputPath(inputPath, ext string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ext
}

// =============================================================================
// ATOMIC WRITES
// =============================================================================

// WriteFileAtomic writes the output produced by write to path. The data goes
// to a uniquely named temp file in the same directory, which is flushed,
// synced and closed before it is renamed over path. On any error the temp
// file is removed and path is left untouched.
func WriteFileAtomic(path string, perm os.FileMode, write func(w io.Writer) error) (err error) {
	tempPath := filepath.Join(filepath.Dir(path),
		fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New().String()))

	file, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tempPath)
		}
	}()

	writer := bufio.NewWriter(file)
	if err = write(writer); err != nil {
		return err
	}
	if err = writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err = file.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err = file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
