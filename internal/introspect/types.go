package introspect

import (
	"strings"

	"github.com/hlop3z/crudgen/internal/model"
)

// MapPostgresType converts an information_schema data_type to a column type.
// Unrecognised types are returned lower-cased and classify as unknown.
func MapPostgresType(dataType string) model.ColumnType {
	lower := strings.ToLower(strings.TrimSpace(dataType))

	switch lower {
	case "integer", "int", "int4", "serial":
		return model.ColumnInteger
	case "bigint", "int8", "bigserial":
		return model.ColumnBigInt
	case "smallint", "int2", "smallserial":
		return model.ColumnSmallInt
	case "character varying", "varchar":
		return model.ColumnVarchar
	case "character", "char", "bpchar":
		return model.ColumnString
	case "text":
		return model.ColumnText
	case "numeric", "decimal":
		return model.ColumnDecimal
	case "real", "float4":
		return model.ColumnFloat
	case "double precision", "float8":
		return model.ColumnDouble
	case "boolean", "bool":
		return model.ColumnBoolean
	case "date":
		return model.ColumnDate
	case "timestamp", "timestamp without time zone",
		"timestamptz", "timestamp with time zone":
		return model.ColumnTimestamp
	default:
		return model.ColumnType(lower)
	}
}

// MapMySQLType converts DATA_TYPE and COLUMN_TYPE to a column type.
// tinyint(1) is MySQL's boolean; unsigned bigint keeps its own type.
func MapMySQLType(dataType, columnType string) model.ColumnType {
	lower := strings.ToLower(strings.TrimSpace(dataType))
	full := strings.ToLower(columnType)

	switch lower {
	case "tinyint":
		if strings.HasPrefix(full, "tinyint(1)") {
			return model.ColumnBoolean
		}
		return model.ColumnTinyInt
	case "int", "integer", "mediumint":
		return model.ColumnInteger
	case "bigint":
		if strings.Contains(full, "unsigned") {
			return model.ColumnUnsignedBigInteger
		}
		return model.ColumnBigInt
	case "smallint":
		return model.ColumnSmallInt
	case "varchar":
		return model.ColumnVarchar
	case "char":
		return model.ColumnString
	case "text", "tinytext", "mediumtext", "longtext":
		return model.ColumnText
	case "decimal", "numeric":
		return model.ColumnDecimal
	case "float":
		return model.ColumnFloat
	case "double", "real":
		return model.ColumnDouble
	case "bool", "boolean":
		return model.ColumnBoolean
	case "date":
		return model.ColumnDate
	case "datetime":
		return model.ColumnDateTime
	case "timestamp":
		return model.ColumnTimestamp
	default:
		return model.ColumnType(lower)
	}
}

// MapSQLiteType converts a declared SQLite column type to a column type.
// SQLite keeps the declaration verbatim, so length arguments are stripped
// before matching.
func MapSQLiteType(declared string) model.ColumnType {
	upper := strings.ToUpper(declared)
	if i := strings.IndexByte(upper, '('); i != -1 {
		upper = upper[:i]
	}
	upper = strings.Join(strings.Fields(upper), " ")

	switch upper {
	case "UNSIGNED BIG INT":
		return model.ColumnUnsignedBigInteger
	case "INTEGER", "INT", "MEDIUMINT":
		return model.ColumnInteger
	case "BIGINT", "INT8":
		return model.ColumnBigInt
	case "SMALLINT", "INT2":
		return model.ColumnSmallInt
	case "TINYINT":
		return model.ColumnTinyInt
	case "VARCHAR", "CHARACTER VARYING", "VARYING CHARACTER", "NVARCHAR":
		return model.ColumnVarchar
	case "CHAR", "CHARACTER", "NCHAR", "NATIVE CHARACTER", "STRING":
		return model.ColumnString
	case "TEXT", "CLOB":
		return model.ColumnText
	case "DECIMAL", "NUMERIC":
		return model.ColumnDecimal
	case "FLOAT", "REAL":
		return model.ColumnFloat
	case "DOUBLE", "DOUBLE PRECISION":
		return model.ColumnDouble
	case "BOOLEAN", "BOOL":
		return model.ColumnBoolean
	case "DATE":
		return model.ColumnDate
	case "DATETIME":
		return model.ColumnDateTime
	case "TIMESTAMP":
		return model.ColumnTimestamp
	default:
		return model.ColumnType(strings.ToLower(upper))
	}
}
