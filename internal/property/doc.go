// Package property provides the field-level parsers shared by the generated
// resource bindings.
//
// Each parser comes in two variants. The API variant accepts values decoded
// from a provider API JSON response and is strict about formats. The catalog
// variant accepts values decoded from locally authored YAML and coerces
// loosely typed scalars. Both return nil for a nil input so that an absent
// field stays absent.
package property
