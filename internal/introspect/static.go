package introspect

import (
	"context"

	"github.com/hlop3z/crudgen/internal/model"
)

// Static answers from column types declared in model definitions.
// It never touches a database.
type Static struct {
	tables map[string]map[string]model.ColumnType
}

// NewStatic returns a Static inspector seeded with the declared columns of
// each descriptor.
func NewStatic(descs ...*model.Descriptor) *Static {
	s := &Static{tables: make(map[string]map[string]model.ColumnType)}
	for _, d := range descs {
		s.Add(d.Table, d.Columns)
	}
	return s
}

// Add registers declared column types for table. Later calls for the same
// table merge over earlier ones.
func (s *Static) Add(table string, columns map[string]model.ColumnType) {
	cols, ok := s.tables[table]
	if !ok {
		cols = make(map[string]model.ColumnType, len(columns))
		s.tables[table] = cols
	}
	for name, typ := range columns {
		cols[name] = typ
	}
}

// ColumnType returns the declared type, or model.ColumnUnknown.
func (s *Static) ColumnType(_ context.Context, table, column string) (model.ColumnType, error) {
	return s.tables[table][column], nil
}

// Chain asks each inspector in turn and returns the first known type.
// Errors abort the lookup.
type Chain []Inspector

// ColumnType implements Inspector.
func (c Chain) ColumnType(ctx context.Context, table, column string) (model.ColumnType, error) {
	result := model.ColumnUnknown
	for _, in := range c {
		ct, err := in.ColumnType(ctx, table, column)
		if err != nil {
			return model.ColumnUnknown, err
		}
		if ct.Known() {
			return ct, nil
		}
		if result == model.ColumnUnknown {
			result = ct
		}
	}
	return result, nil
}
