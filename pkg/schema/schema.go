// Package schema implements declarative structural validation for raw
// record data. A Schema describes the declared fields of one entity and the
// checks attached to each; Validate walks a parsed YAML mapping against it
// recursively and returns every violation as a dotted-path string. Nothing
// here raises on malformed input: one bad field never blocks checking the
// rest of the record.
package schema

import (
	"fmt"
	"sort"
)

// Check validates a single scalar value, returning a message describing
// the violation or "" if the value is acceptable.
type Check func(value any) string

// CrossCheck evaluates conditional requirements spanning multiple fields
// of one mapping, after all per-field checks have run. Messages are
// returned relative to the mapping and reported as "<path>: <message>"
// under the mapping's path.
type CrossCheck func(record map[string]any) []string

// Field declares one field of an entity.
type Field struct {
	// Required fields missing from the data are reported once as
	// "<path> missing"; remaining checks are skipped for that field.
	Required bool

	// Checks run in order against the raw value. All failures are
	// collected; a failing check does not short-circuit the rest.
	Checks []Check

	// Elem, when set, marks a list-of-mapping field whose elements are
	// validated against the nested schema with "<field>.<index>" paths.
	Elem *Schema

	// Sub, when set, marks a single nested mapping validated against the
	// nested schema with "<field>.<subfield>" paths.
	Sub *Schema

	// Free, when set, accepts any value shape (used for extras).
	Free bool
}

// Schema declares the field set of one entity.
type Schema struct {
	Fields map[string]*Field
	Cross  []CrossCheck
}

// Validate checks data against the schema and returns all violations as
// "<dotted.field.path>: <message>" strings. Element ordering follows input
// list order; field ordering is alphabetical for reproducibility.
func Validate(data map[string]any, s *Schema) []string {
	return validate(data, s, "")
}

func validate(data map[string]any, s *Schema, prefix string) []string {
	var out []string

	names := make([]string, 0, len(s.Fields))
	for name := range s.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		field := s.Fields[name]
		path := join(prefix, name)

		raw, ok := data[name]
		if !ok || raw == nil || raw == "" {
			if field.Required {
				out = append(out, path+" missing")
			}
			continue
		}

		if field.Free {
			continue
		}

		if field.Elem != nil {
			out = append(out, validateList(raw, field.Elem, path)...)
			continue
		}

		if field.Sub != nil {
			mapping, ok := asMapping(raw)
			if !ok {
				out = append(out, path+": must be a mapping")
				continue
			}
			out = append(out, validate(mapping, field.Sub, path)...)
			continue
		}

		for _, check := range field.Checks {
			if msg := check(raw); msg != "" {
				out = append(out, path+": "+msg)
			}
		}
	}

	// Unknown keys are schema drift from upstream scrapers, reported at
	// every nesting level.
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, declared := s.Fields[key]; !declared {
			out = append(out, join(prefix, key)+": extra key")
		}
	}

	for _, cross := range s.Cross {
		for _, msg := range cross(data) {
			if prefix == "" {
				out = append(out, msg)
			} else {
				out = append(out, prefix+": "+msg)
			}
		}
	}

	return out
}

func validateList(raw any, elem *Schema, path string) []string {
	list, ok := raw.([]any)
	if !ok {
		return []string{path + ": must be a list"}
	}

	var out []string
	for i, item := range list {
		itemPath := fmt.Sprintf("%s.%d", path, i)
		mapping, ok := asMapping(item)
		if !ok {
			out = append(out, itemPath+": must be a mapping")
			continue
		}
		out = append(out, validate(mapping, elem, itemPath)...)
	}
	return out
}

// asMapping normalizes the mapping shapes YAML decoders produce.
func asMapping(item any) (map[string]any, bool) {
	switch m := item.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		converted := make(map[string]any, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			converted[key] = v
		}
		return converted, true
	}
	return nil, false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
