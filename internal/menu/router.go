package menu

import (
	"fmt"

	"go.uber.org/zap"

	"readmaster-go/internal/updatecheck"
)

// Event name for menu actions forwarded to the UI client.
const EventMenu = "menu"

// Window is the subset of main-window control the menu router needs.
type Window interface {
	Hide()
}

// Emitter delivers fire-and-forget events to the UI client.
type Emitter interface {
	Emit(name string, data interface{})
}

// Notifier shows desktop notifications.
type Notifier interface {
	Show(title, body string) error
}

// UpdateChecker performs a synchronous update check.
type UpdateChecker interface {
	CheckNow() *updatecheck.VersionInfo
}

// Router turns menu bar activations into either native window/process
// actions or events forwarded to the UI client. Side effects are
// best-effort: there is no caller to report failures to.
type Router struct {
	logger   *zap.SugaredLogger
	window   Window
	emitter  Emitter
	notifier Notifier
	checker  UpdateChecker
	quit     func()
}

// NewRouter creates a menu action router.
func NewRouter(logger *zap.SugaredLogger, window Window, emitter Emitter, notifier Notifier, checker UpdateChecker, quit func()) *Router {
	return &Router{
		logger:   logger,
		window:   window,
		emitter:  emitter,
		notifier: notifier,
		checker:  checker,
		quit:     quit,
	}
}

// Handle dispatches one menu activation by identifier. Identifiers without a
// native handler are forwarded to the UI client as a menu event.
func (r *Router) Handle(id string) {
	r.logger.Debugw("Menu action", "id", id)

	switch id {
	case IDQuitApp:
		r.quit()
	case IDHideApp:
		r.window.Hide()
	case IDCheckUpdates:
		// The check blocks on the network; keep it off the event loop.
		go r.runUpdateCheck()
	default:
		r.emitter.Emit(EventMenu, id)
	}
}

// runUpdateCheck performs an interactive update check and reports the
// outcome through a desktop notification.
func (r *Router) runUpdateCheck() {
	info := r.checker.CheckNow()

	var body string
	switch {
	case info.CheckError != "":
		body = fmt.Sprintf("Update check failed: %s", info.CheckError)
	case info.UpdateAvailable:
		body = fmt.Sprintf("Read Master %s is available.", info.LatestVersion)
	default:
		body = "You're running the latest version."
	}

	if err := r.notifier.Show("Read Master", body); err != nil {
		r.logger.Warnw("Failed to show update notification", "error", err)
	}
}
