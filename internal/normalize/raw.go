// Package normalize turns the loosely-shaped JSON the upstream backend returns
// into stable, display-ready view models. The backend wraps list payloads under
// varying keys, renames the same field between endpoints, and encodes status as
// strings or booleans; every helper here is total: unknown or malformed input
// falls back to a default instead of failing.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Record is a raw JSON object as decoded from the backend.
type Record = map[string]any

// AsRecord narrows an arbitrary decoded value to a Record.
func AsRecord(v any) (Record, bool) {
	rec, ok := v.(Record)
	return rec, ok
}

// StringField returns the first candidate key holding a non-empty string.
func StringField(rec Record, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := rec[key].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// StringOr is StringField with a fallback value.
func StringOr(rec Record, fallback string, keys ...string) string {
	if s, ok := StringField(rec, keys...); ok {
		return s
	}
	return fallback
}

// NumberField returns the first candidate key holding a numeric value,
// coercing numeric strings as well. Absent or non-numeric values yield 0.
func NumberField(rec Record, keys ...string) float64 {
	for _, key := range keys {
		if n, ok := toNumber(rec[key]); ok {
			return n
		}
	}
	return 0
}

// OptionalNumber is NumberField but distinguishes "absent" from zero.
func OptionalNumber(rec Record, keys ...string) *float64 {
	for _, key := range keys {
		if n, ok := toNumber(rec[key]); ok {
			return &n
		}
	}
	return nil
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Child returns the first candidate key holding a nested object.
func Child(rec Record, keys ...string) Record {
	for _, key := range keys {
		if child, ok := rec[key].(Record); ok {
			return child
		}
	}
	return nil
}

// Records returns the first candidate key holding an array, with every
// object element narrowed to a Record. Non-object elements are dropped.
func Records(rec Record, keys ...string) []Record {
	for _, key := range keys {
		list, ok := rec[key].([]any)
		if !ok {
			continue
		}
		out := make([]Record, 0, len(list))
		for _, item := range list {
			if child, ok := AsRecord(item); ok {
				out = append(out, child)
			}
		}
		return out
	}
	return nil
}

// Count resolves a count that the backend may expose either as an embedded
// array or as a numeric field. The array length wins when present; numeric
// fallbacks are probed in order afterwards.
func Count(rec Record, listKeys []string, countKeys ...string) int {
	for _, key := range listKeys {
		if list, ok := rec[key].([]any); ok {
			return len(list)
		}
	}
	for _, key := range countKeys {
		if n, ok := toNumber(rec[key]); ok {
			return int(n)
		}
	}
	return 0
}

// DisplayName derives a person's display name. A trimmed firstName+lastName
// concatenation always wins over a pre-joined fullName field, which wins over
// a generic name field, which wins over the fallback literal.
func DisplayName(rec Record, fallback string) string {
	first, _ := StringField(rec, "firstName")
	last, _ := StringField(rec, "lastName")
	if joined := strings.TrimSpace(first + " " + last); joined != "" {
		return joined
	}
	return StringOr(rec, fallback, "fullName", "name")
}

// dateLayouts are tried in order when parsing backend timestamps.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatDate formats the first candidate date field for display. Values that
// cannot be parsed are passed through as-is rather than dropped; a record with
// no date at all yields "N/A".
func FormatDate(rec Record, keys ...string) string {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		s, ok := v.(string)
		if !ok {
			return fmt.Sprintf("%v", v)
		}
		if s == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format("Jan 2, 2006, 3:04 PM")
			}
		}
		return s
	}
	return "N/A"
}

// NormalizeID canonicalizes an id for cross-collection matching (trimmed,
// lowercased). Used only for joins, never for the exact-match lookup path.
func NormalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}
