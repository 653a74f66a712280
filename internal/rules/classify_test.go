package rules

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hlop3z/crudgen/internal/model"
)

var allColumnTypes = []model.ColumnType{
	model.ColumnUnknown,
	model.ColumnInteger, model.ColumnBigInt, model.ColumnSmallInt, model.ColumnTinyInt,
	model.ColumnUnsignedBigInteger,
	model.ColumnString, model.ColumnVarchar, model.ColumnText,
	model.ColumnDecimal, model.ColumnFloat, model.ColumnDouble,
	model.ColumnBoolean,
	model.ColumnDate, model.ColumnDateTime, model.ColumnTimestamp,
	model.ColumnType("json"),
}

func strPtr(s string) *string { return &s }

// -----------------------------------------------------------------------------
// Type Dispatch Tests
// -----------------------------------------------------------------------------

func TestClassifyByColumnType(t *testing.T) {
	tests := []struct {
		field      string
		columnType model.ColumnType
		want       Rule
	}{
		{"quantity", model.ColumnInteger, Rule{"required", "integer"}},
		{"views", model.ColumnBigInt, Rule{"required", "integer"}},
		{"rank", model.ColumnSmallInt, Rule{"required", "integer"}},
		{"level", model.ColumnTinyInt, Rule{"required", "integer"}},
		{"balance", model.ColumnUnsignedBigInteger, Rule{"required", "integer", "min:0"}},
		{"name", model.ColumnString, Rule{"required", "string", "max:255"}},
		{"title", model.ColumnVarchar, Rule{"required", "string", "max:255"}},
		{"user_email", model.ColumnString, Rule{"required", "string", "max:255", "email"}},
		{"email", model.ColumnVarchar, Rule{"required", "string", "max:255", "email"}},
		{"body", model.ColumnText, Rule{"required", "string"}},
		{"contact_email", model.ColumnText, Rule{"required", "string"}},
		{"price", model.ColumnDecimal, Rule{"required", "numeric"}},
		{"ratio", model.ColumnFloat, Rule{"required", "numeric"}},
		{"weight", model.ColumnDouble, Rule{"required", "numeric"}},
		{"active", model.ColumnBoolean, Rule{"required", "boolean"}},
		{"born_on", model.ColumnDate, Rule{"required", "date"}},
		{"starts_at", model.ColumnDateTime, Rule{"required", "date"}},
		{"published_at", model.ColumnTimestamp, Rule{"required", "date"}},
		{"payload", model.ColumnType("json"), Rule{"required", "string", "max:255"}},
		{"mystery", model.ColumnUnknown, Rule{"required", "string", "max:255"}},
		{"email_verified", model.ColumnString, Rule{"required", "string", "max:255"}},
	}

	for _, tt := range tests {
		t.Run(tt.field+"/"+tt.columnType.String(), func(t *testing.T) {
			got := Classify(tt.field, tt.columnType, nil)
			if diff := cmp.Diff(tt.want, got.Rule); diff != "" {
				t.Errorf("Classify() rule mismatch (-want +got):\n%s", diff)
			}
			if got.IsEnum() {
				t.Error("non-enum field should carry no enum metadata")
			}
			if got.Field != tt.field {
				t.Errorf("Field = %q, want %q", got.Field, tt.field)
			}
		})
	}
}

// -----------------------------------------------------------------------------
// Precedence Tests
// -----------------------------------------------------------------------------

func TestClassifyForeignKeyIgnoresColumnType(t *testing.T) {
	for _, ct := range allColumnTypes {
		t.Run(ct.String(), func(t *testing.T) {
			got := Classify("category_id", ct, nil)
			if diff := cmp.Diff(Rule{"required", "integer"}, got.Rule); diff != "" {
				t.Errorf("rule mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyEnumTakesPrecedence(t *testing.T) {
	enum := &model.EnumMeta{Values: []string{"draft", "published", "archived"}, Default: strPtr("draft")}
	want := Rule{"required", "in:draft,published,archived"}

	fields := []string{"status", "owner_id", "contact_email"}
	for _, field := range fields {
		for _, ct := range allColumnTypes {
			t.Run(field+"/"+ct.String(), func(t *testing.T) {
				got := Classify(field, ct, enum)
				if diff := cmp.Diff(want, got.Rule); diff != "" {
					t.Errorf("rule mismatch (-want +got):\n%s", diff)
				}
				if got.Enum != enum {
					t.Error("classification should carry the enum metadata")
				}
			})
		}
	}
}

func TestClassifyEnumSingleValue(t *testing.T) {
	got := Classify("kind", model.ColumnString, &model.EnumMeta{Values: []string{"only"}})
	if got.Rule.String() != "required|in:only" {
		t.Errorf("Rule = %q", got.Rule.String())
	}
	if got.Enum.Default != nil {
		t.Error("default should stay absent")
	}
}

func TestClassifyAlwaysStartsWithRequired(t *testing.T) {
	fields := []string{"name", "user_id", "email", "x"}
	enums := []*model.EnumMeta{nil, {Values: []string{"a", "b"}}}

	for _, field := range fields {
		for _, ct := range allColumnTypes {
			for _, enum := range enums {
				got := Classify(field, ct, enum)
				if len(got.Rule) < 2 || got.Rule[0] != TokenRequired {
					t.Errorf("Classify(%q, %q, %v) = %v, want leading required", field, ct, enum, got.Rule)
				}
			}
		}
	}
}

func TestRuleString(t *testing.T) {
	r := Rule{"required", "string", "max:255", "email"}
	if got := r.String(); got != "required|string|max:255|email" {
		t.Errorf("String() = %q", got)
	}
}
