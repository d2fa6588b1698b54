// Package dialogs presents native file pickers through the windowing runtime.
// Cancellation is a normal result, never an error.
package dialogs

import (
	"fmt"

	"github.com/wailsapp/wails/v3/pkg/application"
	"go.uber.org/zap"
)

// FileFilter describes one entry in a dialog's file type dropdown.
type FileFilter struct {
	DisplayName string
	Pattern     string
}

// BookFilters is the fixed filter set applied to every open/save dialog:
// book formats first, with an all-files fallback.
func BookFilters() []FileFilter {
	return []FileFilter{
		{DisplayName: "Books", Pattern: "*.epub;*.pdf"},
		{DisplayName: "EPUB", Pattern: "*.epub"},
		{DisplayName: "PDF", Pattern: "*.pdf"},
		{DisplayName: "All Files", Pattern: "*"},
	}
}

// Service presents native dialogs. Presenting blocks the calling goroutine
// until the user dismisses the picker; the windowing event loop keeps
// running. The runtime's dialog manager is resolved per call because the
// service is constructed before the runtime starts.
type Service struct {
	logger *zap.SugaredLogger
}

// New creates a dialog service.
func New(logger *zap.SugaredLogger) *Service {
	return &Service{logger: logger}
}

// PickFiles presents an open dialog. It returns the selected paths, or
// canceled=true with no paths when the user dismisses the dialog.
func (s *Service) PickFiles(title string, multiple bool) (paths []string, canceled bool, err error) {
	s.logger.Infow("Opening file dialog", "title", title, "multiple", multiple)

	app := application.Get()
	if app == nil {
		return nil, false, fmt.Errorf("windowing runtime not started")
	}

	dialog := app.Dialog.OpenFile()
	if title != "" {
		dialog.SetTitle(title)
	}
	for _, f := range BookFilters() {
		dialog.AddFilter(f.DisplayName, f.Pattern)
	}

	if multiple {
		selected, err := dialog.PromptForMultipleSelection()
		if err != nil {
			return nil, false, fmt.Errorf("failed to present file dialog: %w", err)
		}
		paths, canceled = openResult(selected)
		return paths, canceled, nil
	}

	selected, err := dialog.PromptForSingleSelection()
	if err != nil {
		return nil, false, fmt.Errorf("failed to present file dialog: %w", err)
	}
	paths, canceled = singleOpenResult(selected)
	return paths, canceled, nil
}

// PickSavePath presents a save dialog. It returns the chosen path, or
// canceled=true with an empty path when the user dismisses the dialog.
func (s *Service) PickSavePath(title, defaultName string) (path string, canceled bool, err error) {
	s.logger.Infow("Opening save dialog", "title", title, "default_name", defaultName)

	app := application.Get()
	if app == nil {
		return "", false, fmt.Errorf("windowing runtime not started")
	}

	dialog := app.Dialog.SaveFile()
	if title != "" {
		dialog.SetOptions(&application.SaveFileDialogOptions{Title: title})
	}
	if defaultName != "" {
		dialog.SetFilename(defaultName)
	}
	for _, f := range BookFilters() {
		dialog.AddFilter(f.DisplayName, f.Pattern)
	}

	selected, err := dialog.PromptForSingleSelection()
	if err != nil {
		return "", false, fmt.Errorf("failed to present save dialog: %w", err)
	}
	path, canceled = saveResult(selected)
	return path, canceled, nil
}

// openResult maps a multi-selection outcome onto the cancellation contract:
// an empty selection means the user dismissed the dialog.
func openResult(selected []string) (paths []string, canceled bool) {
	if len(selected) == 0 {
		return nil, true
	}
	return selected, false
}

func singleOpenResult(selected string) (paths []string, canceled bool) {
	if selected == "" {
		return nil, true
	}
	return []string{selected}, false
}

func saveResult(selected string) (path string, canceled bool) {
	if selected == "" {
		return "", true
	}
	return selected, false
}
