package schemas

import (
	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON Schema that can validate many documents
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// Compile parses schema content once so it can be reused across requests
func Compile(name string, content []byte) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, &SchemaLoadError{
			Path:    name,
			Message: "failed to compile schema",
			Cause:   err,
		}
	}
	return &Schema{name: name, schema: compiled}, nil
}

// ValidateBytes validates a JSON document. Malformed JSON is reported as a *SchemaLoadError.
func (s *Schema) ValidateBytes(document []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return &SchemaLoadError{
			Path:    s.name,
			Message: "failed to load document",
			Cause:   err,
		}
	}
	return resultError(result)
}
