package score

import (
	"math"
	"strings"
)

// Normalizer applies the imputation table to one raw record, producing a
// fully populated record in the model's feature order. Total function: bad
// input is absorbed into substitution, never surfaced as an error.
type Normalizer struct {
	table *ImputationTable
}

func NewNormalizer(table *ImputationTable) *Normalizer {
	return &Normalizer{table: table}
}

// Normalize walks the table's feature order and emits one clean value per
// feature. Numeric slots keep a supplied valid number and substitute the
// frozen default on null, NaN, or a type-mismatched value; the NaN test and
// the mismatch fallback land on the same default. Text slots trim
// surrounding whitespace and substitute the empty string on anything that is
// not a present text value.
func (n *Normalizer) Normalize(raw *Record) *Record {
	clean := NewRecord()
	for _, e := range n.table.Entries() {
		v, ok := raw.Get(e.Name)
		switch e.Kind {
		case KindNumeric:
			clean.Set(e.Name, normalizeNumeric(v, ok, e.Default))
		case KindText:
			clean.Set(e.Name, normalizeText(v, ok))
		}
	}
	return clean
}

func normalizeNumeric(v Value, present bool, def float64) Value {
	if !present || v.Missing || v.Kind != KindNumeric {
		return Number(def)
	}
	if math.IsNaN(v.Number) {
		return Number(def)
	}
	return Number(v.Number)
}

func normalizeText(v Value, present bool) Value {
	if !present || v.Missing || v.Kind != KindText {
		return Text("")
	}
	return Text(strings.TrimSpace(v.Text))
}
