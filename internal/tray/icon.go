package tray

import (
	"fmt"
	"os"
	"path/filepath"
)

// IconFileName is the on-disk name of the materialized application icon.
const IconFileName = "icon.png"

// WriteIcon writes the embedded application icon under dir and returns its
// path. Notification backends take an icon by path, not by bytes, so the
// embedded asset has to exist on disk. Overwrites any previous copy.
func WriteIcon(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create icon directory: %w", err)
	}

	path := filepath.Join(dir, IconFileName)
	if err := os.WriteFile(path, iconData, 0644); err != nil {
		return "", fmt.Errorf("failed to write icon: %w", err)
	}
	return path, nil
}
