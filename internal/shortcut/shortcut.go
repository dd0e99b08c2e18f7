// Package shortcut reads and writes the shortcut artifacts that represent
// program items on disk. An artifact is a minimal desktop-entry style file
// pointing at the chosen executable, named after the executable's stem.
package shortcut

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext is the artifact file extension.
const Ext = ".desktop"

// Write materializes a shortcut artifact for exePath inside dir and returns
// the artifact path.
func Write(dir, exePath string) (string, error) {
	stem := Stem(exePath)
	path := filepath.Join(dir, stem+Ext)

	content := fmt.Sprintf("[Desktop Entry]\nType=Application\nName=%s\nExec=%s\n", stem, exePath)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write shortcut %s: %w", path, err)
	}
	return path, nil
}

// ReadTarget returns the executable path a shortcut artifact points at.
// Files in a foreign shortcut format fall back to the artifact path itself,
// so loading a folder never fails on files this application did not write.
func ReadTarget(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read shortcut %s: %w", path, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		if target, ok := strings.CutPrefix(strings.TrimSpace(line), "Exec="); ok {
			return strings.TrimSpace(target), nil
		}
	}
	return path, nil
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
