package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, os.ModePerm)
}

// SanitizeFilename strips path separators and control characters from a
// client-supplied filename so it can be stored safely.
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	base = strings.ReplaceAll(base, "\x00", "")
	if base == "" || base == "." || base == ".." {
		return "file"
	}
	return base
}

// GenerateUniqueFilename returns a filename that does not collide inside dir,
// keeping the original extension. Collisions get a short uuid suffix.
func GenerateUniqueFilename(dir, original string) string {
	safe := SanitizeFilename(original)
	if _, err := os.Stat(filepath.Join(dir, safe)); os.IsNotExist(err) {
		return safe
	}

	ext := filepath.Ext(safe)
	stem := strings.TrimSuffix(safe, ext)
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s_%s%s", stem, suffix, ext)
}
