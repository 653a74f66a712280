// Package model defines the model descriptor that drives generation and the
// repository that resolves a model name to its descriptor.
package model

import (
	"slices"
	"strings"
)

// ColumnType is the storage type of a column, using the names the rule
// classifier dispatches on. Any other value, including ColumnUnknown, is
// treated as unknown.
type ColumnType string

// Column types understood by the classifier.
const (
	ColumnUnknown            ColumnType = ""
	ColumnInteger            ColumnType = "integer"
	ColumnBigInt             ColumnType = "bigint"
	ColumnSmallInt           ColumnType = "smallint"
	ColumnTinyInt            ColumnType = "tinyint"
	ColumnUnsignedBigInteger ColumnType = "unsignedBigInteger"
	ColumnString             ColumnType = "string"
	ColumnVarchar            ColumnType = "varchar"
	ColumnText               ColumnType = "text"
	ColumnDecimal            ColumnType = "decimal"
	ColumnFloat              ColumnType = "float"
	ColumnDouble             ColumnType = "double"
	ColumnBoolean            ColumnType = "boolean"
	ColumnDate               ColumnType = "date"
	ColumnDateTime           ColumnType = "datetime"
	ColumnTimestamp          ColumnType = "timestamp"
)

var knownColumnTypes = []ColumnType{
	ColumnInteger, ColumnBigInt, ColumnSmallInt, ColumnTinyInt,
	ColumnUnsignedBigInteger,
	ColumnString, ColumnVarchar, ColumnText,
	ColumnDecimal, ColumnFloat, ColumnDouble,
	ColumnBoolean,
	ColumnDate, ColumnDateTime, ColumnTimestamp,
}

// ParseColumnType normalises a declared type name. Matching ignores case and
// surrounding whitespace; names outside the known set are returned trimmed
// so they still classify as unknown.
func ParseColumnType(s string) ColumnType {
	s = strings.TrimSpace(s)
	for _, ct := range knownColumnTypes {
		if strings.EqualFold(s, string(ct)) {
			return ct
		}
	}
	return ColumnType(s)
}

// Known reports whether the type is one the classifier has a rule for.
func (c ColumnType) Known() bool {
	return slices.Contains(knownColumnTypes, c)
}

func (c ColumnType) String() string {
	if c == ColumnUnknown {
		return "unknown"
	}
	return string(c)
}

// EnumMeta is the closed set of values a field accepts.
// Default, when set, is expected to be one of Values.
type EnumMeta struct {
	Values  []string `yaml:"values" json:"values"`
	Default *string  `yaml:"default,omitempty" json:"default,omitempty"`
}

// IsDefault reports whether v is the declared default.
func (e EnumMeta) IsDefault(v string) bool {
	return e.Default != nil && *e.Default == v
}

// Descriptor identifies a model and the fields generation works from.
// It is read-only once resolved.
type Descriptor struct {
	Name     string
	Table    string
	Fillable []string

	// Enums maps a fillable field to its allowed values.
	Enums map[string]EnumMeta

	// Columns holds declared column types, used when no database is
	// configured.
	Columns map[string]ColumnType
}

// Enum returns the enumeration metadata for field, or nil.
func (d *Descriptor) Enum(field string) *EnumMeta {
	meta, ok := d.Enums[field]
	if !ok {
		return nil
	}
	return &meta
}

// DeclaredType returns the declared column type for field.
func (d *Descriptor) DeclaredType(field string) ColumnType {
	return d.Columns[field]
}
