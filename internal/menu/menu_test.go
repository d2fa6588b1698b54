package menu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readmaster-go/internal/platform"
)

func TestSpec_IdentifiersUniquePerPlatform(t *testing.T) {
	for _, name := range []string{
		platform.NameMacOS,
		platform.NameWindows,
		platform.NameLinux,
		platform.NameUnknown,
	} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, Validate(Spec(name)))
		})
	}
}

func TestSpec_SharedSubmenusCarrySameIdentifiers(t *testing.T) {
	macIDs := ActionIDs(Spec(platform.NameMacOS))
	linuxIDs := ActionIDs(Spec(platform.NameLinux))

	// Placement differs, but both trees expose the same identifier set.
	assert.ElementsMatch(t, macIDs, linuxIDs)
}

func TestSpec_MacOSPlacement(t *testing.T) {
	spec := Spec(platform.NameMacOS)

	// App identity submenu first, named after the application.
	require.Equal(t, KindSubmenu, spec[0].Kind)
	assert.Equal(t, "Read Master", spec[0].Label)

	appIDs := ActionIDs([]Item{spec[0]})
	assert.Contains(t, appIDs, IDAbout)
	assert.Contains(t, appIDs, IDCheckUpdates)
	assert.Contains(t, appIDs, IDPreferences)
	assert.Contains(t, appIDs, IDQuitApp)

	// Window submenu exists via the native role.
	var hasWindowRole bool
	for _, item := range spec {
		if item.Kind == KindRole && item.Role == RoleWindow {
			hasWindowRole = true
		}
	}
	assert.True(t, hasWindowRole)
}

func TestSpec_NonMacOSPlacement(t *testing.T) {
	spec := Spec(platform.NameWindows)

	for _, item := range spec {
		assert.NotEqual(t, "Read Master", item.Label, "non-macOS tree must not have an app identity submenu")
		if item.Kind == KindRole {
			assert.NotEqual(t, RoleWindow, item.Role, "Window submenu is macOS-only")
		}
	}

	// Preferences and Quit land in File; updates and about land in Help.
	var fileIDs, helpIDs []string
	for _, item := range spec {
		switch item.Label {
		case "File":
			fileIDs = ActionIDs([]Item{item})
		case "Help":
			helpIDs = ActionIDs([]Item{item})
		}
	}
	assert.Contains(t, fileIDs, IDPreferences)
	assert.Contains(t, fileIDs, IDQuitApp)
	assert.Contains(t, helpIDs, IDCheckUpdates)
	assert.Contains(t, helpIDs, IDAbout)
	assert.NotContains(t, helpIDs, IDHideApp)
}

func TestSpec_AcceleratorModifierConvention(t *testing.T) {
	check := func(t *testing.T, items []Item, wantMod, forbiddenMod string) {
		walk(items, func(item Item) {
			if item.Kind != KindAction || item.Accelerator == "" {
				return
			}
			if strings.Contains(item.Accelerator, "+") {
				assert.Truef(t, strings.HasPrefix(item.Accelerator, wantMod+"+"),
					"item %q accelerator %q must use %s", item.ID, item.Accelerator, wantMod)
			}
			assert.NotContainsf(t, item.Accelerator, forbiddenMod+"+",
				"item %q accelerator %q uses wrong platform modifier", item.ID, item.Accelerator)
		})
	}

	t.Run("macos", func(t *testing.T) {
		check(t, Spec(platform.NameMacOS), "Cmd", "Ctrl")
	})
	t.Run("linux", func(t *testing.T) {
		check(t, Spec(platform.NameLinux), "Ctrl", "Cmd")
	})
}

func TestSpec_ReadingSubmenuIdenticalAcrossPlatforms(t *testing.T) {
	reading := func(spec []Item) []string {
		for _, item := range spec {
			if item.Label == "Reading" {
				return ActionIDs([]Item{item})
			}
		}
		return nil
	}

	macReading := reading(Spec(platform.NameMacOS))
	winReading := reading(Spec(platform.NameWindows))

	require.NotEmpty(t, macReading)
	assert.Equal(t, macReading, winReading)
	assert.Contains(t, winReading, IDTableOfContents)
}

func TestValidate_RejectsDuplicates(t *testing.T) {
	tree := []Item{
		submenu("File",
			action("import_book", "Import Book...", ""),
			action("import_book", "Import Book Again...", ""),
		),
	}

	err := Validate(tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate menu identifier")
}

func TestValidate_RejectsEmptyID(t *testing.T) {
	tree := []Item{
		submenu("File", Item{Label: "Broken", Kind: KindAction}),
	}

	err := Validate(tree)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no identifier")
}
