package validator

import (
	"maps"
	"reflect"

	"github.com/validtree/validtree/pkg/rules"
)

// SchemaDialect is the dialect every generated schema document declares.
const SchemaDialect = "https://json-schema.org/draft/2020-12/schema"

// Schema generates a JSON Schema document from the compiled validator graph.
// Constraint parameters share JSON Schema keyword spelling, so they merge
// into the schema verbatim; fields wrapped in Optional are left out of the
// required list. The document is a pure function of the declared type and is
// intended for pre-validation of a decoded generic value before binding.
func (tv *TypeValidator[T]) Schema() map[string]any {
	properties := make(map[string]any, len(tv.fields))
	required := make([]string, 0, len(tv.fields))
	for _, f := range tv.fields {
		properties[f.name] = f.schema()
		if f.required {
			required = append(required, f.name)
		}
	}

	doc := map[string]any{
		"$schema":    SchemaDialect,
		"title":      tv.typeName,
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

// JSONSchema makes *TypeValidator satisfy the schemaProvider capability, so
// a nested validatable type can contribute its fragment to a parent schema.
func (tv *TypeValidator[T]) JSONSchema() map[string]any {
	doc := tv.Schema()
	delete(doc, "$schema")
	return doc
}

// mergeConstraintParams copies declared parameters into a schema node.
// Custom rules carry no schema-expressible parameters and are skipped.
func mergeConstraintParams[V any](node map[string]any, cs []rules.Constraint[V]) {
	for _, c := range cs {
		if c.Rule() == "custom" {
			continue
		}
		maps.Copy(node, c.Params())
	}
}

// jsonType maps a Go type onto the JSON Schema type vocabulary. Types with
// no natural mapping yield "" and the schema node stays untyped.
func jsonType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	case reflect.Pointer:
		return jsonType(t.Elem())
	default:
		return ""
	}
}
