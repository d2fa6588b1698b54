// Package menu declares the application menu bar as data. One declarative
// specification with two platform variants: macOS gets the app-identity and
// Window submenus plus Cmd accelerators, every other platform gets Ctrl
// accelerators with Preferences/About/Check for Updates redistributed into
// File and Help. Actionable items carry stable string identifiers; the event
// router dispatches purely on those, so uniqueness is validated at build
// time.
package menu

import (
	"fmt"

	"readmaster-go/internal/platform"
)

// Action identifiers. Part of the external contract with the UI client:
// unhandled identifiers are forwarded verbatim in menu events.
const (
	IDAbout           = "about"
	IDCheckUpdates    = "check_updates"
	IDPreferences     = "preferences"
	IDHideApp         = "hide_app"
	IDQuitApp         = "quit_app"
	IDImportBook      = "import_book"
	IDNewWindow       = "new_window"
	IDLibrary         = "library"
	IDFlashcards      = "flashcards"
	IDSocial          = "social"
	IDFullscreen      = "toggle_fullscreen"
	IDPrevPage        = "prev_page"
	IDNextPage        = "next_page"
	IDToggleTTS       = "toggle_tts"
	IDAddBookmark     = "add_bookmark"
	IDAddNote         = "add_note"
	IDSearchBook      = "search_book"
	IDTableOfContents = "table_of_contents"
	IDDocumentation   = "documentation"
	IDShortcuts       = "shortcuts"
	IDReportIssue     = "report_issue"
)

// Kind discriminates menu tree nodes.
type Kind int

const (
	KindAction Kind = iota
	KindSeparator
	KindSubmenu
	KindRole
)

// Role names a native menu role materialized by the windowing runtime.
type Role string

const (
	RoleEdit   Role = "edit"
	RoleWindow Role = "window"
)

// Item is one node of the declarative menu tree. Trees are immutable once
// built for the process lifetime.
type Item struct {
	ID          string
	Label       string
	Accelerator string
	Disabled    bool
	Kind        Kind
	Role        Role
	Items       []Item
}

func action(id, label, accelerator string) Item {
	return Item{ID: id, Label: label, Accelerator: accelerator, Kind: KindAction}
}

func separator() Item {
	return Item{Kind: KindSeparator}
}

func submenu(label string, items ...Item) Item {
	return Item{Label: label, Kind: KindSubmenu, Items: items}
}

func role(r Role) Item {
	return Item{Kind: KindRole, Role: r}
}

// Spec returns the menu bar tree for the given platform name
// (platform.NameMacOS selects the macOS variant).
func Spec(platformName string) []Item {
	mod := platform.Modifier(platformName)

	if platformName == platform.NameMacOS {
		return []Item{
			appSubmenu(mod),
			submenu("File",
				action(IDImportBook, "Import Book...", mod+"+O"),
				separator(),
				action(IDNewWindow, "New Window", mod+"+Shift+N"),
			),
			role(RoleEdit),
			viewSubmenu(mod),
			readingSubmenu(mod),
			role(RoleWindow),
			submenu("Help", helpCoreItems(mod)...),
		}
	}

	return []Item{
		submenu("File",
			action(IDImportBook, "Import Book...", mod+"+O"),
			separator(),
			action(IDNewWindow, "New Window", mod+"+Shift+N"),
			separator(),
			action(IDPreferences, "Preferences...", mod+"+,"),
			separator(),
			action(IDQuitApp, "Quit", mod+"+Q"),
		),
		role(RoleEdit),
		viewSubmenu(mod),
		readingSubmenu(mod),
		submenu("Help", append(helpCoreItems(mod),
			separator(),
			action(IDCheckUpdates, "Check for Updates...", ""),
			separator(),
			action(IDAbout, "About Read Master", ""),
		)...),
	}
}

// appSubmenu is the macOS-only application identity submenu.
func appSubmenu(mod string) Item {
	return submenu("Read Master",
		action(IDAbout, "About Read Master", ""),
		separator(),
		action(IDCheckUpdates, "Check for Updates...", ""),
		separator(),
		action(IDPreferences, "Preferences...", mod+"+,"),
		separator(),
		action(IDHideApp, "Hide Read Master", mod+"+H"),
		separator(),
		action(IDQuitApp, "Quit Read Master", mod+"+Q"),
	)
}

func viewSubmenu(mod string) Item {
	return submenu("View",
		action(IDLibrary, "Library", mod+"+1"),
		action(IDFlashcards, "Flashcards", mod+"+2"),
		action(IDSocial, "Social", mod+"+3"),
		separator(),
		action(IDFullscreen, "Toggle Full Screen", ""),
	)
}

func readingSubmenu(mod string) Item {
	return submenu("Reading",
		action(IDPrevPage, "Previous Page", "Left"),
		action(IDNextPage, "Next Page", "Right"),
		separator(),
		action(IDToggleTTS, "Toggle Text-to-Speech", mod+"+T"),
		action(IDAddBookmark, "Add Bookmark", mod+"+D"),
		action(IDAddNote, "Add Note", mod+"+N"),
		separator(),
		action(IDSearchBook, "Search in Book...", mod+"+F"),
		action(IDTableOfContents, "Table of Contents", mod+"+Shift+T"),
	)
}

func helpCoreItems(mod string) []Item {
	return []Item{
		action(IDDocumentation, "Documentation", ""),
		action(IDShortcuts, "Keyboard Shortcuts", mod+"+/"),
		separator(),
		action(IDReportIssue, "Report an Issue...", ""),
	}
}

// ActionIDs returns every actionable identifier in the tree, in traversal
// order. Separators and roles carry no identifier.
func ActionIDs(items []Item) []string {
	var ids []string
	walk(items, func(item Item) {
		if item.Kind == KindAction {
			ids = append(ids, item.ID)
		}
	})
	return ids
}

// Validate asserts that every actionable item has a non-empty identifier and
// that no identifier occurs twice within the tree. A collision would silently
// alias one action with another in the event router.
func Validate(items []Item) error {
	seen := make(map[string]bool)
	var err error
	walk(items, func(item Item) {
		if item.Kind != KindAction || err != nil {
			return
		}
		if item.ID == "" {
			err = fmt.Errorf("menu item %q has no identifier", item.Label)
			return
		}
		if seen[item.ID] {
			err = fmt.Errorf("duplicate menu identifier %q", item.ID)
			return
		}
		seen[item.ID] = true
	})
	return err
}

func walk(items []Item, fn func(Item)) {
	for _, item := range items {
		fn(item)
		if len(item.Items) > 0 {
			walk(item.Items, fn)
		}
	}
}
