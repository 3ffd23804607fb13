package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// DefaultScreenshotDir returns ~/.arcade/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".arcade", "screenshots")
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// SaveScreenshot writes the plain-text contents of s to
// dir/<gameID>_<timestamp>.txt and returns the file path.
func SaveScreenshot(dir, gameID string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("engine: cannot create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s.txt", gameID, at.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("engine: cannot write screenshot: %w", err)
	}
	return path, nil
}
