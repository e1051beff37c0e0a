package validator

import (
	"sort"
	"strings"
)

// ValidationErrors collects field-level validation messages keyed by field name.
// It satisfies the error interface so it can flow through normal error returns
// while keeping per-field detail available to the UI layer.
type ValidationErrors map[string][]string

// Add appends a message for a field.
func (e ValidationErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether the field has at least one violation.
func (e ValidationErrors) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty reports whether no violations were recorded.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Error renders all violations as "field: message" pairs in field order.
func (e ValidationErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	for _, field := range fields {
		for _, msg := range e[field] {
			if b.Len() > 0 {
				b.WriteString("; ")
			}
			b.WriteString(field)
			b.WriteString(": ")
			b.WriteString(msg)
		}
	}
	return b.String()
}
