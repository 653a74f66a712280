package rules

import "github.com/hlop3z/crudgen/internal/model"

// Table maps fields to their classification, in the model's declared field
// order. That order drives every generated form, table and rule listing.
type Table struct {
	entries []Classification
	index   map[string]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Add appends a classification. A field added twice keeps its first
// position and takes the newer classification.
func (t *Table) Add(c Classification) {
	if i, ok := t.index[c.Field]; ok {
		t.entries[i] = c
		return
	}
	t.index[c.Field] = len(t.entries)
	t.entries = append(t.entries, c)
}

// Len returns the number of fields.
func (t *Table) Len() int {
	return len(t.entries)
}

// Fields returns the field names in order.
func (t *Table) Fields() []string {
	fields := make([]string, len(t.entries))
	for i, e := range t.entries {
		fields[i] = e.Field
	}
	return fields
}

// Entries returns the classifications in order.
func (t *Table) Entries() []Classification {
	out := make([]Classification, len(t.entries))
	copy(out, t.entries)
	return out
}

// Get returns the classification for field.
func (t *Table) Get(field string) (Classification, bool) {
	i, ok := t.index[field]
	if !ok {
		return Classification{}, false
	}
	return t.entries[i], true
}

// Rule returns the rule for field, or nil.
func (t *Table) Rule(field string) Rule {
	c, _ := t.Get(field)
	return c.Rule
}

// Enum returns the enumeration metadata recorded for field, or nil.
func (t *Table) Enum(field string) *model.EnumMeta {
	c, _ := t.Get(field)
	return c.Enum
}
