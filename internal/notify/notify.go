// Package notify delivers desktop notifications through the OS notification
// service.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"
)

// Notifier shows desktop notifications.
type Notifier struct {
	logger   *zap.SugaredLogger
	iconPath string
}

// New creates a Notifier. iconPath may be empty; the OS then falls back to a
// generic application icon.
func New(logger *zap.SugaredLogger, iconPath string) *Notifier {
	return &Notifier{
		logger:   logger,
		iconPath: iconPath,
	}
}

// Show displays a notification with the given title and optional body.
func (n *Notifier) Show(title, body string) error {
	n.logger.Infow("Showing notification", "title", title)

	if err := beeep.Notify(title, body, n.iconPath); err != nil {
		return fmt.Errorf("failed to show notification: %w", err)
	}
	return nil
}
