// Package app sequences one-time process setup: providers, command service,
// menu, main window, tray, and the close interceptor. Setup failure at any
// step aborts startup; there is no partial-degraded-mode launch.
package app

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"
	"go.uber.org/zap"

	"readmaster-go/internal/commands"
	"readmaster-go/internal/config"
	"readmaster-go/internal/dialogs"
	"readmaster-go/internal/menu"
	"readmaster-go/internal/notify"
	"readmaster-go/internal/platform"
	"readmaster-go/internal/store"
	"readmaster-go/internal/tray"
	"readmaster-go/internal/updatecheck"
)

// App owns the process-wide singletons: the runtime application, the main
// window, the tray, and the capability providers. Created once during
// bootstrap and torn down at process exit.
type App struct {
	cfg     *config.Config
	logger  *zap.Logger
	version string
	assets  fs.FS
}

// New creates the application shell. assets is the embedded frontend bundle
// served to the UI client.
func New(cfg *config.Config, logger *zap.Logger, version string, assets fs.FS) *App {
	return &App{
		cfg:     cfg,
		logger:  logger,
		version: version,
		assets:  assets,
	}
}

// Run performs the bootstrap sequence and hands control to the UI event
// loop. It returns when the application quits normally; any setup failure
// returns an error instead of launching.
func (a *App) Run() error {
	sugar := a.logger.Sugar()
	sugar.Infow("Setting up application", "version", a.version, "platform", platform.Name())

	// Capability providers.
	settings := store.New(a.cfg.DataDir, a.logger.Named("store").Sugar())
	defer func() {
		_ = settings.Close()
	}()

	// Notifications carry the app icon; a failed write degrades to iconless.
	iconPath, err := tray.WriteIcon(a.cfg.DataDir)
	if err != nil {
		sugar.Warnw("Failed to write notification icon", "error", err)
		iconPath = ""
	}
	notifier := notify.New(a.logger.Named("notify").Sugar(), iconPath)
	dialogService := dialogs.New(a.logger.Named("dialogs").Sugar())
	checker := updatecheck.New(a.logger.Named("updatecheck"), a.version)

	service, err := commands.NewService(a.logger.Named("commands").Sugar(), a.version,
		dialogService, notifier, settings, checker)
	if err != nil {
		return fmt.Errorf("failed to build command service: %w", err)
	}

	// The menu bar and tray dispatch purely by identifier string; a
	// collision between the two trees would silently alias actions.
	menuSpec := menu.Spec(platform.Name())
	if err := tray.ValidateIdentifiers(menuSpec); err != nil {
		return fmt.Errorf("identifier collision: %w", err)
	}

	wapp := application.New(application.Options{
		Name:        "Read Master",
		Description: "Read Master desktop",
		Services: []application.Service{
			application.NewService(service),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(a.assets),
		},
		Mac: application.MacOptions{
			// The tray keeps the process alive with the window hidden.
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})
	if wapp == nil {
		return fmt.Errorf("failed to create application runtime")
	}

	window := wapp.Window.NewWithOptions(application.WebviewWindowOptions{
		Title:  a.cfg.WindowTitle,
		Width:  a.cfg.WindowWidth,
		Height: a.cfg.WindowHeight,
		URL:    "/",
	})
	if window == nil {
		return fmt.Errorf("failed to create main window")
	}

	win := &windowAdapter{window: window}
	emitter := &eventEmitter{app: wapp}

	// Menu bar, attached before first paint.
	menuRouter := menu.NewRouter(a.logger.Named("menu").Sugar(), win, emitter, notifier, checker, wapp.Quit)
	menuBar, err := menu.Build(wapp, menuSpec, menuRouter.Handle)
	if err != nil {
		return fmt.Errorf("failed to build application menu: %w", err)
	}
	wapp.Menu.SetApplicationMenu(menuBar)

	// Tray.
	if a.cfg.EnableTray {
		controller := tray.NewController(a.logger.Named("tray").Sugar(), win, emitter, wapp.Quit)
		if _, err := tray.Attach(wapp, controller); err != nil {
			return fmt.Errorf("failed to create system tray: %w", err)
		}
	}

	// On macOS closing the window conventionally hides the app, not quits
	// it: intercept the close and hide instead. Elsewhere the default close
	// proceeds unmodified.
	if platform.IsDarwin() {
		window.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
			e.Cancel()
			window.Hide()
		})
	}

	// Background update checks for the process lifetime.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go checker.Start(ctx)

	sugar.Info("Application setup complete")
	return wapp.Run()
}
