// Package validation holds the composable field rules shared by every record
// form and the error map they produce.
package validation

import (
	"sort"
	"strings"
	"time"
)

// Errors maps a field name to the message shown next to it. A nil or empty
// map means the draft is valid.
type Errors map[string]string

// Error renders the map in field order so the output is stable.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether field failed validation.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Err returns e as an error, or nil when there is nothing to report.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// CrossRule compares several fields at once. It returns the offending field
// and its message, or failed=false when the values are consistent.
type CrossRule func(values map[string]string) (field, message string, failed bool)

type fieldRules struct {
	name  string
	rules []Rule
}

// Set is an ordered collection of field rules.
type Set struct {
	fields []fieldRules
	cross  []CrossRule
}

// New returns an empty rule set.
func New() *Set {
	return &Set{}
}

// Field appends rules for name. The first failing rule provides the message.
func (s *Set) Field(name string, rules ...Rule) *Set {
	s.fields = append(s.fields, fieldRules{name: name, rules: rules})
	return s
}

// Cross appends a multi-field rule. It only runs when the fields it reports
// on have no single-field error already.
func (s *Set) Cross(rule CrossRule) *Set {
	s.cross = append(s.cross, rule)
	return s
}

// Validate applies every rule to the trimmed values.
func (s *Set) Validate(values map[string]string) Errors {
	errs := Errors{}
	for _, f := range s.fields {
		value := strings.TrimSpace(values[f.name])
		if msg := first(value, f.rules); msg != "" {
			errs[f.name] = msg
		}
	}
	for _, rule := range s.cross {
		field, msg, failed := rule(trimmed(values))
		if failed && !errs.Has(field) {
			errs[field] = msg
		}
	}
	return errs
}

// DateNotBefore fails field when both dates are present and field precedes
// reference.
func DateNotBefore(field, reference, message string) CrossRule {
	return func(values map[string]string) (string, string, bool) {
		if values[field] == "" || values[reference] == "" {
			return "", "", false
		}
		a, errA := time.Parse(DateLayout, values[field])
		b, errB := time.Parse(DateLayout, values[reference])
		if errA != nil || errB != nil {
			return "", "", false
		}
		if a.Before(b) {
			return field, message, true
		}
		return "", "", false
	}
}

func trimmed(values map[string]string) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = strings.TrimSpace(v)
	}
	return out
}
