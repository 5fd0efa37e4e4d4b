package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// readText returns inline text when given, otherwise the contents of path.
// A path of "-" reads stdin; an empty path yields an empty string.
func readText(inline, path string, stdin io.Reader) (string, error) {
	if inline != "" {
		return inline, nil
	}

	switch path {
	case "":
		return "", nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), nil
	}
}

// documentPath treats a missing file argument as stdin.
func documentPath(file string) string {
	if strings.TrimSpace(file) == "" {
		return "-"
	}
	return file
}
