// Package rules infers validation rules for a model's fillable fields from
// their names, column types and enumeration metadata.
package rules

import (
	"strings"

	"github.com/hlop3z/crudgen/internal/model"
)

// Rule tokens.
const (
	TokenRequired = "required"
	TokenInteger  = "integer"
	TokenMin0     = "min:0"
	TokenString   = "string"
	TokenMax255   = "max:255"
	TokenEmail    = "email"
	TokenNumeric  = "numeric"
	TokenBoolean  = "boolean"
	TokenDate     = "date"
)

// Rule is an ordered list of validation tokens. The first token is always
// "required".
type Rule []string

// String joins the tokens with "|", the form used by request classes.
func (r Rule) String() string {
	return strings.Join(r, "|")
}

// Classification is the result of classifying one field.
type Classification struct {
	Field string
	Rule  Rule

	// Enum is set when the field is an enumeration. Forms render such
	// fields as selects.
	Enum *model.EnumMeta
}

// IsEnum reports whether the field was classified as an enumeration.
func (c Classification) IsEnum() bool {
	return c.Enum != nil
}

// Classify derives the rule for one field. It never fails; unrecognised
// column types fall back to a bounded string.
//
// Precedence: enumeration metadata, then the "_id" suffix, then the column
// type.
func Classify(field string, columnType model.ColumnType, enum *model.EnumMeta) Classification {
	c := Classification{Field: field, Rule: Rule{TokenRequired}}

	if enum != nil {
		c.Rule = append(c.Rule, "in:"+strings.Join(enum.Values, ","))
		c.Enum = enum
		return c
	}

	if strings.HasSuffix(field, "_id") {
		c.Rule = append(c.Rule, TokenInteger)
		return c
	}

	c.Rule = append(c.Rule, typeTokens(field, columnType)...)
	return c
}

func typeTokens(field string, columnType model.ColumnType) []string {
	switch columnType {
	case model.ColumnInteger, model.ColumnBigInt, model.ColumnSmallInt, model.ColumnTinyInt:
		return []string{TokenInteger}
	case model.ColumnUnsignedBigInteger:
		return []string{TokenInteger, TokenMin0}
	case model.ColumnString, model.ColumnVarchar:
		if strings.HasSuffix(field, "email") {
			return []string{TokenString, TokenMax255, TokenEmail}
		}
		return []string{TokenString, TokenMax255}
	case model.ColumnText:
		return []string{TokenString}
	case model.ColumnDecimal, model.ColumnFloat, model.ColumnDouble:
		return []string{TokenNumeric}
	case model.ColumnBoolean:
		return []string{TokenBoolean}
	case model.ColumnDate, model.ColumnDateTime, model.ColumnTimestamp:
		return []string{TokenDate}
	default:
		return []string{TokenString, TokenMax255}
	}
}
