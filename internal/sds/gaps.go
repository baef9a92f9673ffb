package sds

import (
	"strings"

	"github.com/chemledger/sdsforge/internal/locale"
)

// GapRule flags a safety-critical hole in an extracted record and names the
// field keys a gap-fill pass is allowed to write.
type GapRule struct {
	Name   string
	Fields []string
	// Applies reports whether the rule fires for the record.
	Applies func(rec Record, loc locale.Strings) bool
}

// GapRules is the active gap policy. It is a package variable so deployments
// with different regulatory baselines can adjust it.
var GapRules = []GapRule{
	{
		// A classified product with no occupational exposure limit at all.
		Name:   "exposure_limit",
		Fields: []string{"ak_value", "ck_value", "mk_value"},
		Applies: func(rec Record, _ locale.Strings) bool {
			return rec.Has("h_statements") &&
				!rec.Has("ak_value") && !rec.Has("ck_value") && !rec.Has("mk_value")
		},
	},
	{
		Name:   "ld50_oral",
		Fields: []string{"ld50_oral"},
		Applies: func(rec Record, _ locale.Strings) bool {
			return !rec.Has("ld50_oral")
		},
	},
	{
		Name:   "svhc_status",
		Fields: []string{"svhc"},
		Applies: func(rec Record, _ locale.Strings) bool {
			return !rec.Has("svhc")
		},
	},
	{
		// Hand protection that is either absent or so generic it cannot be
		// acted on (no material, thickness, or standard).
		Name:   "hand_protection_spec",
		Fields: []string{"hand_protection"},
		Applies: func(rec Record, loc locale.Strings) bool {
			v, ok := rec.Get("hand_protection")
			if !ok {
				return true
			}
			return isGenericHandProtection(v, loc)
		},
	},
	{
		Name:   "respiratory_protection",
		Fields: []string{"respiratory_protection"},
		Applies: func(rec Record, _ locale.Strings) bool {
			return rec.Has("h_statements") && !rec.Has("respiratory_protection")
		},
	},
}

// isGenericHandProtection reports whether hand-protection text names the
// equipment without a concrete specification. A mention of an EN standard or
// a thickness counts as specific.
func isGenericHandProtection(text string, loc locale.Strings) bool {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "en 374") || strings.Contains(lower, "en374") ||
		strings.Contains(lower, "mm") {
		return false
	}
	for _, term := range loc.GenericPPETerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			return true
		}
	}
	return false
}

// CriticalGaps evaluates the gap policy and returns the fillable field keys,
// deduplicated, in rule order. Unreadable and failed records never report
// gaps; there is nothing trustworthy to enrich.
func CriticalGaps(rec Record, loc locale.Strings) []string {
	if rec.Status != StatusProcessed {
		return nil
	}
	seen := make(map[string]struct{})
	var keys []string
	for _, rule := range GapRules {
		if !rule.Applies(rec, loc) {
			continue
		}
		for _, k := range rule.Fields {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	return keys
}
