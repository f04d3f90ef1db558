package engines

import (
	"github.com/invopop/jsonschema"
)

// MetadataSchema returns the JSON Schema of the meta.json sidecar.
// Additional properties are allowed since readers ignore unknown keys.
func MetadataSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties:  true,
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(Metadata))
	schema.Title = "Dropfunk engine metadata"
	schema.Description = "Describes an installed engine. Stored as meta.json in the engine directory."
	return schema
}
