package util

import (
	"errors"
	"path/filepath"
	"strings"
)

// SanitizeFileName flattens a file name into a single safe path segment.
// Separators and ".." runs become underscores; only an empty result is an
// error.
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, "..", "_")
	if s == "" || s == "." {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// BaseFileName strips any client-supplied directory components from an
// uploaded file name, keeping the name shown back to users.
func BaseFileName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "\\", "/")
	base := filepath.Base(name)
	if base == "." || base == "/" {
		return ""
	}
	return base
}
