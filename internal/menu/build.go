package menu

import (
	"fmt"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// Build validates the tree and materializes it into a native menu, binding
// every actionable item to onAction. Any failure here is a bootstrap
// contract violation: the caller must abort startup rather than launch a
// window without a menu.
func Build(app *application.App, spec []Item, onAction func(id string)) (*application.Menu, error) {
	if err := Validate(spec); err != nil {
		return nil, fmt.Errorf("invalid menu specification: %w", err)
	}

	root := app.NewMenu()
	if root == nil {
		return nil, fmt.Errorf("menu construction failed")
	}

	for _, item := range spec {
		if err := materialize(root, item, onAction); err != nil {
			return nil, err
		}
	}

	return root, nil
}

func materialize(parent *application.Menu, item Item, onAction func(id string)) error {
	switch item.Kind {
	case KindSeparator:
		parent.AddSeparator()

	case KindRole:
		switch item.Role {
		case RoleEdit:
			parent.AddRole(application.EditMenu)
		case RoleWindow:
			parent.AddRole(application.WindowMenu)
		default:
			return fmt.Errorf("unknown menu role %q", item.Role)
		}

	case KindSubmenu:
		sub := parent.AddSubmenu(item.Label)
		if sub == nil {
			return fmt.Errorf("failed to create submenu %q", item.Label)
		}
		for _, child := range item.Items {
			if err := materialize(sub, child, onAction); err != nil {
				return err
			}
		}

	case KindAction:
		id := item.ID
		native := parent.Add(item.Label)
		if native == nil {
			return fmt.Errorf("failed to create menu item %q", id)
		}
		if item.Accelerator != "" {
			native.SetAccelerator(item.Accelerator)
		}
		if item.Disabled {
			native.SetEnabled(false)
		}
		native.OnClick(func(_ *application.Context) {
			onAction(id)
		})

	default:
		return fmt.Errorf("unknown menu item kind %d", item.Kind)
	}

	return nil
}
