package engines

import (
	"encoding/json"

	"codeberg.org/r6915ee/dropfunk/pkg/constants"
	"codeberg.org/r6915ee/dropfunk/pkg/errors"
)

// Metadata describes an engine. It is read from, or created as, the
// meta.json sidecar in the engine's directory.
type Metadata struct {
	DisplayName string  `json:"display_name" yaml:"display_name" jsonschema:"required,title=Display name,description=Name shown for the engine"`
	SourceCode  *string `json:"source_code" yaml:"source_code,omitempty" jsonschema:"oneof_type=string;null,description=URL of the engine source code"`
	Website     *string `json:"website" yaml:"website,omitempty" jsonschema:"oneof_type=string;null,description=URL of the engine website"`
	Authors     *string `json:"authors" yaml:"authors,omitempty" jsonschema:"oneof_type=string;null,description=Free-form author credits"`
}

// DefaultMetadata returns the record written for engines without a sidecar.
func DefaultMetadata() Metadata {
	return Metadata{DisplayName: constants.DefaultDisplayName}
}

// UnmarshalJSON decodes a sidecar. Unknown keys are ignored and missing
// optional keys stay nil; display_name must be present and non-null.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	var raw struct {
		DisplayName *string `json:"display_name"`
		SourceCode  *string `json:"source_code"`
		Website     *string `json:"website"`
		Authors     *string `json:"authors"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.DisplayName == nil {
		return errors.NewValidationError("display_name", nil, "is required")
	}

	*m = Metadata{
		DisplayName: *raw.DisplayName,
		SourceCode:  raw.SourceCode,
		Website:     raw.Website,
		Authors:     raw.Authors,
	}
	return nil
}

// Encode returns the canonical sidecar encoding: compact JSON with every
// key present and absent optionals written as null.
func (m Metadata) Encode() ([]byte, error) {
	return json.Marshal(m)
}

// DecodeMetadata parses sidecar contents. file is only used to label errors.
func DecodeMetadata(file string, data []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return Metadata{}, errors.WrapParse("json", file, err)
	}
	return m, nil
}
