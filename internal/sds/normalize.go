package sds

import (
	"strconv"
	"strings"

	"github.com/chemledger/sdsforge/internal/schema"
)

// nullSentinels are strings models emit instead of omitting a value.
// Compared case-insensitively after trimming.
var nullSentinels = map[string]struct{}{
	"null": {}, "none": {}, "n/a": {}, "na": {}, "-": {}, "unknown": {},
}

// Normalize converts a raw extraction mapping into a Record. Unknown keys
// are dropped, null-ish values become absent fields, and scalar values are
// coerced to trimmed strings. The result is idempotent: normalizing a
// rendering of an already-normalized record changes nothing.
func Normalize(source string, raw map[string]any) Record {
	rec := NewRecord(source)
	rec.Status = StatusProcessed

	for key, val := range raw {
		switch key {
		case "confidence_score":
			if f, ok := toFloat(val); ok {
				rec.Confidence = &f
			}
			continue
		case "missing_fields":
			rec.MissingFields = toKnownKeys(val)
			continue
		}
		if !schema.Known(key) {
			continue
		}
		if s, ok := normalizeValue(val); ok {
			rec.Fields[key] = s
		}
	}
	return rec
}

// normalizeValue coerces a raw value to its canonical string form.
// The second return is false when the value means "absent".
func normalizeValue(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return "", false
		}
		if _, null := nullSentinels[strings.ToLower(s)]; null {
			return "", false
		}
		return s, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

func toFloat(val any) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func toKnownKeys(val any) []string {
	items, ok := val.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		s = strings.TrimSpace(s)
		if schema.Known(s) {
			out = append(out, s)
		}
	}
	return out
}
