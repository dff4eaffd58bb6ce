// Defines the tagged Value type for raw input cells and the ordered Record
// that carries one applicant's features through the pipeline.

package score

import (
	"fmt"
)

// Kind declares the expected type of a feature slot.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)

// Value is one input cell: a 64-bit float, a bounded-length text string, or
// missing. Kind records what the caller actually supplied, so a text value
// sitting in a numeric slot is representable and gets imputed away by the
// normalizer rather than raising an error.
type Value struct {
	Kind    Kind
	Missing bool
	Number  float64
	Text    string
}

func Number(f float64) Value { return Value{Kind: KindNumeric, Number: f} }
func Text(s string) Value    { return Value{Kind: KindText, Text: s} }
func Missing() Value         { return Value{Missing: true} }

func (v Value) String() string {
	switch {
	case v.Missing:
		return "<missing>"
	case v.Kind == KindNumeric:
		return fmt.Sprintf("%g", v.Number)
	default:
		return fmt.Sprintf("%q", v.Text)
	}
}

// Record is an ordered feature-name → value mapping. The feature set and
// order are fixed per deployed model and must match the imputation table's
// key set; the normalizer re-emits records in the table's order.
type Record struct {
	names  []string
	values []Value
	index  map[string]int
}

func NewRecord() *Record {
	return &Record{index: make(map[string]int)}
}

// Set appends the feature on first use and overwrites on repeat, preserving
// first-insertion order.
func (r *Record) Set(name string, v Value) {
	if i, ok := r.index[name]; ok {
		r.values[i] = v
		return
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)
	r.values = append(r.values, v)
}

// Get returns the value for name; ok is false when the feature is absent
// from the record entirely.
func (r *Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.values[i], true
}

// Names returns the feature names in record order.
func (r *Record) Names() []string { return r.names }

func (r *Record) Len() int { return len(r.names) }
