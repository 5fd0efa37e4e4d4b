// Package workdir provides utilities for managing the procflow working directory.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Root returns the base directory for all procflow files.
// The path is expanded at runtime to resolve to:
//
//	$HOME/Documents/Alkime/ProcFlow
func Root() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, "Documents", "Alkime", "ProcFlow"), nil
}

// ExportDir returns the default directory for exported diagrams.
func ExportDir() (string, error) {
	root, err := Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "exports"), nil
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// BaseName derives an export file name (without extension) from a source path.
// Stdin input and unusable names fall back to a timestamp.
func BaseName(sourcePath string, now time.Time) string {
	name := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	slug := strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if sourcePath == "" || sourcePath == "-" || slug == "" {
		return "process-flow-" + now.Format("2006-01-02-150405")
	}
	return slug
}
