package introspect

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/model"
)

type mysqlInspector struct {
	db *sql.DB
}

func (m *mysqlInspector) ColumnType(ctx context.Context, table, column string) (model.ColumnType, error) {
	// COLUMN_TYPE carries the display width and UNSIGNED flag that
	// DATA_TYPE drops.
	query := `
		SELECT DATA_TYPE, COLUMN_TYPE
		FROM information_schema.COLUMNS
		WHERE TABLE_SCHEMA = DATABASE()
			AND TABLE_NAME = ?
			AND COLUMN_NAME = ?
	`

	var dataType, columnType string
	err := m.db.QueryRowContext(ctx, query, table, column).Scan(&dataType, &columnType)
	if errors.Is(err, sql.ErrNoRows) {
		return model.ColumnUnknown, nil
	}
	if err != nil {
		return model.ColumnUnknown, alerr.WrapSQL(err, "look up column type", table, column)
	}

	return MapMySQLType(dataType, columnType), nil
}
