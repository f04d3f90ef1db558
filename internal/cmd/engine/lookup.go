// Package engine provides common engine operations for CLI commands.
package engine

import (
	"strconv"

	"codeberg.org/r6915ee/dropfunk/pkg/engines"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

// Index resolves a command argument to a catalog index. An exact engine
// directory name wins; otherwise the argument is read as a numeric index.
func Index(cat *engines.Catalog, arg string) (int, error) {
	if i, ok := cat.Index(arg); ok {
		return i, nil
	}

	if i, err := strconv.Atoi(arg); err == nil {
		if i < 0 || i >= cat.Len() {
			return 0, &errors.ValidationError{
				Field:   "engine",
				Value:   arg,
				Message: "index out of range (catalog holds " + strconv.Itoa(cat.Len()) + " engines)",
			}
		}
		return i, nil
	}

	return 0, &errors.NotFoundError{
		Resource: "engine",
		ID:       arg,
	}
}

// Target resolves the engine a command operates on. An empty argument
// selects the catalog's selected engine.
func Target(cat *engines.Catalog, arg string) (int, error) {
	if cat.IsEmpty() {
		return 0, &errors.NotFoundError{
			Resource: "engine",
			ID:       "in " + cat.Location(),
		}
	}
	if arg == "" {
		if _, ok := cat.SelectedEngine(); !ok {
			return 0, &errors.ValidationError{
				Field:   "selected",
				Value:   cat.Selected(),
				Message: "selected index is out of range",
			}
		}
		return cat.Selected(), nil
	}
	return Index(cat, arg)
}
