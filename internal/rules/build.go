package rules

import (
	"context"
	"log/slog"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/model"
)

// SchemaInspector reports the storage type of one column.
type SchemaInspector interface {
	ColumnType(ctx context.Context, table, column string) (model.ColumnType, error)
}

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger receiving one debug record per classified
// field. The default is slog.Default().
func WithLogger(logger *slog.Logger) BuildOption {
	return func(c *buildConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Build classifies every fillable field of desc, in declared order.
// The table is complete before it is returned; any inspector failure aborts
// the build and nothing is returned.
func Build(ctx context.Context, desc *model.Descriptor, inspector SchemaInspector, opts ...BuildOption) (*Table, error) {
	cfg := buildConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(desc.Fillable) == 0 {
		return nil, alerr.New(alerr.ErrNoWritableFields, "no fillable fields found").
			WithModel(desc.Name)
	}

	table := NewTable()
	for _, field := range desc.Fillable {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		columnType, err := inspector.ColumnType(ctx, desc.Table, field)
		if err != nil {
			return nil, alerr.Wrap(alerr.ErrIntrospection, err, "failed to inspect column").
				WithModel(desc.Name).
				WithTable(desc.Table).
				WithColumn(field)
		}

		c := Classify(field, columnType, desc.Enum(field))
		cfg.logger.Debug("classified field",
			"model", desc.Name,
			"field", field,
			"column_type", columnType.String(),
			"rule", c.Rule.String(),
		)
		table.Add(c)
	}

	return table, nil
}
