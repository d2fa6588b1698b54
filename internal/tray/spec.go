// Package tray owns the process-wide tray icon: one menu, one tooltip, and
// the router that turns tray events into window mutations or navigation
// events for the UI client.
package tray

import (
	"fmt"

	"readmaster-go/internal/menu"
)

// Tray menu identifiers. Disjoint from the menu bar identifiers by contract;
// ValidateIdentifiers enforces that at startup.
const (
	IDTitle      = "tray_title"
	IDShow       = "tray_show"
	IDHide       = "tray_hide"
	IDLibrary    = "tray_library"
	IDContinue   = "tray_continue"
	IDFlashcards = "tray_flashcards"
	IDSettings   = "tray_settings"
	IDQuit       = "tray_quit"
)

// EventNavigate is the fire-and-forget signal telling the UI client which
// view to display.
const EventNavigate = "navigate"

// Navigation paths carried by navigate events.
const (
	PathLibrary    = "/library"
	PathContinue   = "/reader/continue"
	PathFlashcards = "/flashcards/review"
	PathSettings   = "/settings"
)

// navTargets maps tray identifiers to the navigation path they emit after
// showing the window.
var navTargets = map[string]string{
	IDLibrary:    PathLibrary,
	IDContinue:   PathContinue,
	IDFlashcards: PathFlashcards,
	IDSettings:   PathSettings,
}

// Tooltip shown on the tray icon.
const Tooltip = "Read Master"

// Spec returns the tray menu tree. Identical on every platform.
func Spec() []menu.Item {
	return []menu.Item{
		{ID: IDTitle, Label: "Read Master", Kind: menu.KindAction, Disabled: true},
		{Kind: menu.KindSeparator},
		{ID: IDShow, Label: "Show Window", Kind: menu.KindAction},
		{ID: IDHide, Label: "Hide Window", Kind: menu.KindAction},
		{Kind: menu.KindSeparator},
		{ID: IDLibrary, Label: "Open Library", Kind: menu.KindAction},
		{ID: IDContinue, Label: "Continue Reading", Kind: menu.KindAction},
		{ID: IDFlashcards, Label: "Review Flashcards", Kind: menu.KindAction},
		{Kind: menu.KindSeparator},
		{ID: IDSettings, Label: "Settings", Kind: menu.KindAction},
		{Kind: menu.KindSeparator},
		{ID: IDQuit, Label: "Quit Read Master", Kind: menu.KindAction},
	}
}

// ValidateIdentifiers asserts the tray tree is internally unique and shares
// no identifier with the given menu bar tree. Both routers dispatch purely
// by identifier string, so a collision would silently misroute actions.
func ValidateIdentifiers(menuBar []menu.Item) error {
	traySpec := Spec()
	if err := menu.Validate(traySpec); err != nil {
		return fmt.Errorf("invalid tray menu: %w", err)
	}

	trayIDs := make(map[string]bool)
	for _, id := range menu.ActionIDs(traySpec) {
		trayIDs[id] = true
	}
	for _, id := range menu.ActionIDs(menuBar) {
		if trayIDs[id] {
			return fmt.Errorf("identifier %q used by both menu bar and tray", id)
		}
	}
	return nil
}
