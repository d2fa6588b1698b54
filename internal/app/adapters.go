package app

import (
	"github.com/wailsapp/wails/v3/pkg/application"
)

// windowAdapter narrows the runtime window to what the menu and tray routers
// need. Every call is nil-safe: tray and menu side effects are best-effort,
// and a missing window must degrade to a no-op, not a crash.
type windowAdapter struct {
	window application.Window
}

func (a *windowAdapter) Show() {
	if a.window != nil {
		a.window.Show()
	}
}

func (a *windowAdapter) Hide() {
	if a.window != nil {
		a.window.Hide()
	}
}

func (a *windowAdapter) Focus() {
	if a.window != nil {
		a.window.Focus()
	}
}

// IsVisible reports false when the window is gone, so the tray click
// fallback action is "show".
func (a *windowAdapter) IsVisible() bool {
	if a.window == nil {
		return false
	}
	return a.window.IsVisible()
}

// eventEmitter delivers fire-and-forget events to the UI client through the
// runtime event bus.
type eventEmitter struct {
	app *application.App
}

func (e *eventEmitter) Emit(name string, data interface{}) {
	e.app.Event.Emit(name, data)
}
