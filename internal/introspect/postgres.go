package introspect

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/lib/pq"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/model"
)

type postgresInspector struct {
	db *sql.DB
}

func (p *postgresInspector) ColumnType(ctx context.Context, table, column string) (model.ColumnType, error) {
	query := `
		SELECT data_type
		FROM information_schema.columns
		WHERE table_schema = current_schema()
			AND table_name = $1
			AND column_name = $2
	`

	var dataType string
	err := p.db.QueryRowContext(ctx, query, table, column).Scan(&dataType)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ColumnUnknown, nil
	}
	if err != nil {
		return model.ColumnUnknown, alerr.WrapSQL(err, "look up column type", table, column)
	}

	return MapPostgresType(dataType), nil
}
