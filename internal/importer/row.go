package importer

import "strings"

// Field declares one logical column of an import schema: the canonical
// key plus the header spellings spreadsheets use for it. Synonyms are
// matched case-insensitively after trimming.
type Field struct {
	Key      string
	Synonyms []string
	Required bool
}

// Schema is the declarative field table for one import type. Handlers
// consult it through Normalize; tests can exercise each synonym set on
// its own.
type Schema struct {
	Fields []Field
}

// RawRow is one spreadsheet row keyed by its (lower-cased, trimmed)
// original headers. Number is the 1-indexed sheet row, so the first
// data row under the header is 2.
type RawRow struct {
	Number int
	Cells  map[string]string
}

// Record is a normalized row: every schema key resolved to a trimmed
// value (possibly empty for optional fields).
type Record struct {
	Row    int
	Values map[string]string
}

// Get returns the value for a schema key.
func (r *Record) Get(key string) string { return r.Values[key] }

// Normalize maps a raw row onto the schema. For each field the first
// synonym with a non-empty cell wins. When a required field stays
// empty the row yields no record and the missing keys are returned;
// the caller decides how to report the skip.
func (s *Schema) Normalize(raw RawRow) (*Record, []string) {
	values := make(map[string]string, len(s.Fields))
	var missing []string

	for _, f := range s.Fields {
		var v string
		for _, syn := range f.Synonyms {
			if cell, ok := raw.Cells[strings.ToLower(syn)]; ok {
				cell = strings.TrimSpace(cell)
				if cell != "" {
					v = cell
					break
				}
			}
		}
		if v == "" && f.Required {
			missing = append(missing, f.Key)
		}
		values[f.Key] = v
	}

	if len(missing) > 0 {
		return nil, missing
	}
	return &Record{Row: raw.Number, Values: values}, nil
}

// Empty reports whether the raw row has no content at all.
func (r RawRow) Empty() bool {
	for _, v := range r.Cells {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
