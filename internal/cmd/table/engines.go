// Package table turns catalog data into rows for the output formatters.
package table

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"codeberg.org/r6915ee/dropfunk/internal/utils/ptr"
	"codeberg.org/r6915ee/dropfunk/pkg/engines"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Placeholder is shown for absent optional values.
const Placeholder = "-"

// SelectedMarker prefixes the index of the selected engine.
const SelectedMarker = "*"

// EnginesToTableData converts catalog engines to rows. wide adds the link
// columns.
func EnginesToTableData(list []engines.Engine, selected int, wide bool) Data {
	headers := []string{"#", "Directory", "Name", "Authors"}
	align := []Align{AlignRight, AlignLeft, AlignLeft, AlignLeft}
	if wide {
		headers = append(headers, Heading("source_code"), Heading("website"))
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(list))
	for i, e := range list {
		index := strconv.Itoa(i)
		if i == selected {
			index = SelectedMarker + index
		}
		row := []string{
			index,
			e.Root,
			e.Metadata.DisplayName,
			ptr.Value(e.Metadata.Authors, Placeholder),
		}
		if wide {
			row = append(row,
				ptr.Value(e.Metadata.SourceCode, Placeholder),
				ptr.Value(e.Metadata.Website, Placeholder),
			)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// EngineDetails converts one engine to property/value rows.
func EngineDetails(e engines.Engine, path string) Data {
	rows := [][]string{
		{"Directory", e.Root},
		{"Path", path},
		{Heading("display_name"), e.Metadata.DisplayName},
	}
	optional := []struct {
		key   string
		value *string
	}{
		{"authors", e.Metadata.Authors},
		{"source_code", e.Metadata.SourceCode},
		{"website", e.Metadata.Website},
	}
	for _, o := range optional {
		if ptr.NonEmpty(o.value) {
			rows = append(rows, []string{Heading(o.key), *o.value})
		}
	}
	rows = append(rows, []string{"Versions", joinOrPlaceholder(e.Versions)})

	return Data{
		Headers: []string{"Property", "Value"},
		Rows:    rows,
	}
}

// ModpacksToTableData converts modpacks to rows.
func ModpacksToTableData(modpacks []engines.Modpack) Data {
	rows := make([][]string, 0, len(modpacks))
	for _, m := range modpacks {
		rows = append(rows, []string{m.DisplayName, m.Version, m.Brief})
	}
	return Data{
		Headers: []string{"Modpack", "Version", "Brief"},
		Rows:    rows,
	}
}

// Heading turns a sidecar key such as source_code into "Source Code".
func Heading(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}

func joinOrPlaceholder(values []string) string {
	if len(values) == 0 {
		return Placeholder
	}
	return strings.Join(values, ", ")
}
