package introspect

import (
	"context"
	"database/sql"
	"errors"

	_ "modernc.org/sqlite"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/model"
)

type sqliteInspector struct {
	db *sql.DB
}

func (s *sqliteInspector) ColumnType(ctx context.Context, table, column string) (model.ColumnType, error) {
	// The table-valued form of PRAGMA table_info takes bound parameters,
	// so the table name needs no quoting.
	query := `SELECT type FROM pragma_table_info(?) WHERE name = ?`

	var declared string
	err := s.db.QueryRowContext(ctx, query, table, column).Scan(&declared)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ColumnUnknown, nil
	}
	if err != nil {
		return model.ColumnUnknown, alerr.WrapSQL(err, "look up column type", table, column)
	}

	return MapSQLiteType(declared), nil
}
