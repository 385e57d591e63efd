// Package record implements the form-driven record lifecycle shared by every
// dairy entity: a store, a validating form controller, running tallies and
// table presentation, all configured by a declarative Schema.
package record

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Narasimha40-dev/DAIRY/internal/validation"
)

// Draft holds raw form values keyed by field name.
type Draft map[string]string

// Clone returns an independent copy of d.
func (d Draft) Clone() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Trimmed returns a copy with surrounding whitespace removed from every value.
func (d Draft) Trimmed() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		out[k] = strings.TrimSpace(v)
	}
	return out
}

// Normalizer rewrites a value as it is typed into the form.
type Normalizer func(string) string

// Schema describes one entity type to the engine.
type Schema[T Record] struct {
	// Entity is the singular name used in logs and exports.
	Entity string
	// Fields lists the form fields in display order.
	Fields []string
	// Secret fields are blanked when a stored record is loaded for editing.
	Secret []string
	// Normalize maps a field to the rewrite applied by Form.SetField.
	Normalize map[string]Normalizer
	// Validate checks a trimmed draft. editing is true when the draft
	// replaces an existing record.
	Validate func(d Draft, editing bool) validation.Errors
	// Build turns a valid trimmed draft into a record. prev is the record
	// being replaced, nil on create.
	Build func(id ID, d Draft, prev *T) T
	// Draft converts a stored record back to form values.
	Draft func(T) Draft
	// Header and Row render the record as a table line.
	Header []string
	Row    func(T) []any
	// Search returns the values matched by Manager.Search.
	Search func(T) []string
}

// EmptyDraft returns a draft with every field present and blank.
func (s Schema[T]) EmptyDraft() Draft {
	d := make(Draft, len(s.Fields))
	for _, f := range s.Fields {
		d[f] = ""
	}
	return d
}

// Normalized applies the field normalizers to a copy of d, as SetField does
// for a single field. Drafts that bypass the form use it.
func (s Schema[T]) Normalized(d Draft) Draft {
	out := d.Clone()
	for name, fn := range s.Normalize {
		if v, ok := out[name]; ok && fn != nil {
			out[name] = fn(v)
		}
	}
	return out
}

func (s Schema[T]) hasField(name string) bool {
	for _, f := range s.Fields {
		if f == name {
			return true
		}
	}
	return false
}

// CapitalizeFirst upper-cases the first rune.
func CapitalizeFirst(v string) string {
	r, size := utf8.DecodeRuneInString(v)
	if size == 0 || r == utf8.RuneError {
		return v
	}
	return string(unicode.ToUpper(r)) + v[size:]
}

// LettersOnly drops everything except ASCII letters and spaces.
func LettersOnly(v string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			return r
		}
		return -1
	}, v)
}

// DigitsOnly drops everything except ASCII digits.
func DigitsOnly(v string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, v)
}

// Chain applies normalizers left to right.
func Chain(fns ...Normalizer) Normalizer {
	return func(v string) string {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}
