package engine

import (
	"codeberg.org/r6915ee/dropfunk/pkg/engines"
)

// View is the structured (json/yaml) form of a catalog entry.
type View struct {
	Index    int               `json:"index" yaml:"index"`
	Selected bool              `json:"selected" yaml:"selected"`
	Root     string            `json:"root" yaml:"root"`
	Path     string            `json:"path,omitempty" yaml:"path,omitempty"`
	Metadata engines.Metadata  `json:"metadata" yaml:"metadata"`
	Versions []string          `json:"versions" yaml:"versions"`
	Modpacks []engines.Modpack `json:"modpacks" yaml:"modpacks"`
}

// NewView builds the view of engine i.
func NewView(cat *engines.Catalog, i int) View {
	e := cat.Engine(i)
	return View{
		Index:    i,
		Selected: i == cat.Selected(),
		Root:     e.Root,
		Metadata: e.Metadata,
		Versions: e.Versions,
		Modpacks: e.Modpacks,
	}
}

// Views builds the views of every engine in cat.
func Views(cat *engines.Catalog) []View {
	views := make([]View, cat.Len())
	for i := range views {
		views[i] = NewView(cat, i)
	}
	return views
}
