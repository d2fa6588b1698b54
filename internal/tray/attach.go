package tray

import (
	_ "embed"
	"fmt"

	"github.com/wailsapp/wails/v3/pkg/application"

	"readmaster-go/internal/menu"
)

//go:embed icon.png
var iconData []byte

// Attach creates the tray icon, builds its menu, and subscribes the
// controller to menu activation and pointer events. The tray lives for the
// process lifetime; a failure here is fatal for startup.
func Attach(app *application.App, controller *Controller) (*application.SystemTray, error) {
	sysTray := app.SystemTray.New()
	if sysTray == nil {
		return nil, fmt.Errorf("tray construction failed")
	}

	sysTray.SetIcon(iconData)
	sysTray.SetTooltip(Tooltip)

	trayMenu, err := menu.Build(app, Spec(), controller.HandleMenu)
	if err != nil {
		return nil, fmt.Errorf("failed to build tray menu: %w", err)
	}
	sysTray.SetMenu(trayMenu)

	// Single left click (button release) toggles; double click always shows.
	// Right clicks open the menu natively, everything else is ignored.
	sysTray.OnClick(controller.HandleClick)
	sysTray.OnDoubleClick(controller.HandleDoubleClick)

	return sysTray, nil
}
