// Package sds holds the canonical record model for extracted safety data
// sheet content plus the normalization and gap-detection passes that run
// between extraction and risk assessment.
package sds

import (
	"fmt"

	"github.com/chemledger/sdsforge/internal/schema"
)

// Status tracks where a record is in the pipeline.
type Status int

const (
	// StatusPending means the record has not been processed yet.
	StatusPending Status = iota
	// StatusProcessed means extraction succeeded.
	StatusProcessed
	// StatusUnreadable means the source document had no usable text.
	StatusUnreadable
	// StatusFailed means extraction failed after retries.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessed:
		return "processed"
	case StatusUnreadable:
		return "unreadable"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Component is one hazardous ingredient of a mixture.
type Component struct {
	Name           string
	CAS            string
	EC             string
	Concentration  string
	Classification string
}

// Record is one processed SDS document. Field values live in Fields keyed by
// the canonical schema keys; a missing key is the single representation of
// an absent value. Empty strings never appear as values.
type Record struct {
	SourceDocument string
	Status         Status
	Err            string // raw failure text for failed/unreadable records

	Fields map[string]string

	// Extraction bookkeeping reported by the model.
	Confidence    *float64
	MissingFields []string
}

// NewRecord creates an empty record for a source document.
func NewRecord(source string) Record {
	return Record{
		SourceDocument: source,
		Fields:         make(map[string]string),
	}
}

// Get returns a field value and whether it is present.
func (r Record) Get(key string) (string, bool) {
	v, ok := r.Fields[key]
	return v, ok
}

// Value returns a field value or "" when absent.
func (r Record) Value(key string) string {
	return r.Fields[key]
}

// Has reports whether a field is present.
func (r Record) Has(key string) bool {
	_, ok := r.Fields[key]
	return ok
}

// Set stores a field value. Empty values are dropped so absence stays the
// only representation of missing data.
func (r *Record) Set(key, value string) {
	if r.Fields == nil {
		r.Fields = make(map[string]string)
	}
	if value == "" {
		delete(r.Fields, key)
		return
	}
	r.Fields[key] = value
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	out := r
	out.Fields = make(map[string]string, len(r.Fields))
	for k, v := range r.Fields {
		out.Fields[k] = v
	}
	if r.Confidence != nil {
		c := *r.Confidence
		out.Confidence = &c
	}
	out.MissingFields = append([]string(nil), r.MissingFields...)
	return out
}

// Components returns the up-to-three mixture components present on the
// record, skipping entries with no name.
func (r Record) Components() []Component {
	var out []Component
	for i := 1; i <= 3; i++ {
		prefix := fmt.Sprintf("comp%d_", i)
		c := Component{
			Name:           r.Value(prefix + "name"),
			CAS:            r.Value(prefix + "cas"),
			EC:             r.Value(prefix + "ec"),
			Concentration:  r.Value(prefix + "conc"),
			Classification: r.Value(prefix + "clp"),
		}
		if c.Name == "" && c.CAS == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// RestoreOriginals enforces the merge contract: every field present on the
// original keeps its original value, and fields absent on the original may
// only appear when listed in allowed. Anything else is reverted.
func RestoreOriginals(orig, merged Record, allowed []string) Record {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		allowedSet[k] = struct{}{}
	}

	out := merged.Clone()
	for k, v := range orig.Fields {
		out.Fields[k] = v
	}
	for k := range out.Fields {
		if _, inOrig := orig.Fields[k]; inOrig {
			continue
		}
		if _, ok := allowedSet[k]; !ok {
			delete(out.Fields, k)
		}
	}
	// Bookkeeping always comes from the original extraction.
	out.SourceDocument = orig.SourceDocument
	out.Status = orig.Status
	out.Err = orig.Err
	out.Confidence = orig.Confidence
	out.MissingFields = append([]string(nil), orig.MissingFields...)
	return out
}

// FilledGaps reports which of the allowed keys the merge actually filled.
func FilledGaps(orig, merged Record, allowed []string) []string {
	var filled []string
	for _, k := range allowed {
		if !orig.Has(k) && merged.Has(k) && schema.Known(k) {
			filled = append(filled, k)
		}
	}
	return filled
}
