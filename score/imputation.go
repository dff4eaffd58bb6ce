// Defines the frozen imputation table generated at model-export time from
// training-data statistics.

package score

// ImputationEntry is one frozen default: feature name, declared kind, and
// the substitution value. Numeric defaults are training-set means; text
// defaults are always the empty string, so only the numeric value is stored.
type ImputationEntry struct {
	Name    string
	Kind    Kind
	Default float64 // numeric default; unused for text entries
}

// ImputationTable maps feature names to their frozen defaults and fixes the
// model's feature order. Built once, read-only thereafter. A model feature
// with no entry is a generation-time defect, not a runtime error, so Lookup
// has no error path beyond the ok flag.
type ImputationTable struct {
	entries []ImputationEntry
	index   map[string]int
}

func NewImputationTable(entries []ImputationEntry) *ImputationTable {
	t := &ImputationTable{
		entries: make([]ImputationEntry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	copy(t.entries, entries)
	for i, e := range t.entries {
		t.index[e.Name] = i
	}
	return t
}

// Lookup returns the entry for name.
func (t *ImputationTable) Lookup(name string) (ImputationEntry, bool) {
	i, ok := t.index[name]
	if !ok {
		return ImputationEntry{}, false
	}
	return t.entries[i], true
}

// Entries returns the table in model feature order.
func (t *ImputationTable) Entries() []ImputationEntry { return t.entries }

// Names returns the feature names in model feature order.
func (t *ImputationTable) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

func (t *ImputationTable) Len() int { return len(t.entries) }
