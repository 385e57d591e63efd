package record

import (
	"fmt"
	"strings"
)

// Table renders records as rows matching Schema.Header.
func (m *Manager[T]) Table(records []T) [][]any {
	rows := make([][]any, 0, len(records))
	if m.schema.Row == nil {
		return rows
	}
	for _, r := range records {
		rows = append(rows, m.schema.Row(r))
	}
	return rows
}

// Describe renders one record as "Header: value" lines for a read-only view.
func (m *Manager[T]) Describe(r T) string {
	if m.schema.Row == nil {
		return ""
	}
	values := m.schema.Row(r)
	var b strings.Builder
	for i, h := range m.schema.Header {
		if i >= len(values) {
			break
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %v", h, values[i])
	}
	return b.String()
}
