package engines

// Engine is one installed engine: a direct subdirectory of the catalog
// location together with its metadata.
type Engine struct {
	// Root is the subdirectory name relative to the catalog location.
	Root string `json:"root" yaml:"root"`

	// Versions lists version folder names. Scans leave it empty; the
	// layout root/<engine>/<version>/ is reserved for it.
	Versions []string `json:"versions" yaml:"versions"`

	// Modpacks lists bundles found under root/<engine>/mods/. Scans leave
	// it empty.
	Modpacks []Modpack `json:"modpacks" yaml:"modpacks"`

	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// DisplayName is shorthand for e.Metadata.DisplayName.
func (e Engine) DisplayName() string {
	return e.Metadata.DisplayName
}

// Modpack is a named, versioned content bundle for an engine.
type Modpack struct {
	DisplayName string `json:"display_name" yaml:"display_name"`
	Version     string `json:"version" yaml:"version"`
	Brief       string `json:"brief" yaml:"brief"`
}

// Equal reports whether both modpacks have the same name, version and brief.
func (m Modpack) Equal(other Modpack) bool {
	return m == other
}

func (e Engine) clone() Engine {
	out := e
	out.Versions = append([]string{}, e.Versions...)
	out.Modpacks = append([]Modpack{}, e.Modpacks...)
	return out
}
