package tray

import (
	"go.uber.org/zap"
)

// Window is the subset of main-window control tray actions need. IsVisible
// must report false when visibility cannot be determined, so the fallback
// click action is "show".
type Window interface {
	Show()
	Hide()
	Focus()
	IsVisible() bool
}

// Emitter delivers fire-and-forget events to the UI client.
type Emitter interface {
	Emit(name string, data interface{})
}

// Controller routes tray menu activations and tray icon pointer events.
// All side effects are best-effort: tray actions have no caller awaiting a
// result, so a stale window handle is swallowed rather than propagated.
type Controller struct {
	logger  *zap.SugaredLogger
	window  Window
	emitter Emitter
	quit    func()
}

// NewController creates the tray event router. quit must terminate the
// process event loop with a normal exit.
func NewController(logger *zap.SugaredLogger, window Window, emitter Emitter, quit func()) *Controller {
	return &Controller{
		logger:  logger,
		window:  window,
		emitter: emitter,
		quit:    quit,
	}
}

// HandleMenu dispatches one tray menu activation by identifier.
// Unrecognized identifiers are a no-op: menu bar identifiers flow through a
// separate handler and must not be treated as errors here.
func (c *Controller) HandleMenu(id string) {
	c.logger.Debugw("Tray menu event", "id", id)

	switch id {
	case IDShow:
		c.showAndFocus()
	case IDHide:
		c.window.Hide()
	case IDQuit:
		c.logger.Info("Quit requested from tray")
		c.quit()
	case IDLibrary, IDContinue, IDFlashcards, IDSettings:
		c.showAndFocus()
		c.emitter.Emit(EventNavigate, navTargets[id])
	default:
	}
}

// HandleClick toggles window visibility on a single left click release:
// hide when visible, show and focus otherwise.
func (c *Controller) HandleClick() {
	if c.window.IsVisible() {
		c.window.Hide()
		return
	}
	c.showAndFocus()
}

// HandleDoubleClick unconditionally shows and focuses the window.
// Idempotent when the window is already visible.
func (c *Controller) HandleDoubleClick() {
	c.showAndFocus()
}

func (c *Controller) showAndFocus() {
	c.window.Show()
	c.window.Focus()
}
