package corpus

import (
	"fmt"
	"strings"
)

// Field is one key/value pair of a structured record. Records keep their
// fields as an ordered slice because normalization depends on insertion order.
type Field struct {
	Key   string
	Value any
}

// Fields is a structured record
type Fields []Field

// preferredKeys lists content-bearing field names checked before falling back
// to joining every text-valued field.
var preferredKeys = []string{"text", "content", "body", "clause", "section"}

// Normalize converts one raw record into a text snippet.
// Strings pass through unchanged. Structured records yield the first non-empty
// preferred field, else all string values joined by newlines. Anything else
// gets a best-effort rendering.
func Normalize(record any) string {
	switch r := record.(type) {
	case string:
		return r
	case Fields:
		for _, key := range preferredKeys {
			for _, f := range r {
				if f.Key != key {
					continue
				}
				if s, ok := f.Value.(string); ok && strings.TrimSpace(s) != "" {
					return s
				}
			}
		}
		var parts []string
		for _, f := range r {
			if s, ok := f.Value.(string); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	default:
		return fmt.Sprintf("%v", record)
	}
}

// Flatten normalizes a batch of raw records into the ordered snippet corpus.
// Records that normalize to empty (after trimming) are dropped; the survivors
// keep their original relative order.
func Flatten(records []any) []string {
	snippets := make([]string, 0, len(records))
	for _, r := range records {
		text := Normalize(r)
		if strings.TrimSpace(text) == "" {
			continue
		}
		snippets = append(snippets, text)
	}
	return snippets
}
