package render

import (
	"github.com/invopop/jsonschema"
)

// JSONSchema describes Action as one of its two wire shapes.
func (Action) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			inlineSchema(&RemapAction{}),
			inlineSchema(&ExecuteAction{}),
		},
	}
}

func inlineSchema(v any) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(v)
	s.Version = ""
	return s
}

// Schema returns the JSON Schema of Document.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&Document{})
	s.Title = "remapc configuration"
	s.Description = "Global and per-application key remapping rules."
	return s
}
