package rules

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/model"
	"github.com/hlop3z/crudgen/internal/testutil"
)

// mapInspector answers from a fixed table -> column -> type map and records
// every lookup.
type mapInspector struct {
	types map[string]map[string]model.ColumnType
	calls []string
	err   error
}

func (m *mapInspector) ColumnType(_ context.Context, table, column string) (model.ColumnType, error) {
	m.calls = append(m.calls, table+"."+column)
	if m.err != nil {
		return model.ColumnUnknown, m.err
	}
	return m.types[table][column], nil
}

func productDescriptor() *model.Descriptor {
	draft := "draft"
	return &model.Descriptor{
		Name:     "Product",
		Table:    "products",
		Fillable: []string{"name", "price", "status", "category_id"},
		Enums: map[string]model.EnumMeta{
			"status": {Values: []string{"draft", "published"}, Default: &draft},
		},
	}
}

// -----------------------------------------------------------------------------
// Build Tests
// -----------------------------------------------------------------------------

func TestBuildProduct(t *testing.T) {
	inspector := &mapInspector{types: map[string]map[string]model.ColumnType{
		"products": {
			"name":        model.ColumnString,
			"price":       model.ColumnDecimal,
			"status":      model.ColumnString,
			"category_id": model.ColumnBigInt,
		},
	}}

	table, err := Build(context.Background(), productDescriptor(), inspector)
	testutil.AssertNoError(t, err)

	want := map[string]string{
		"name":        "required|string|max:255",
		"price":       "required|numeric",
		"status":      "required|in:draft,published",
		"category_id": "required|integer",
	}
	for field, rule := range want {
		if got := table.Rule(field).String(); got != rule {
			t.Errorf("rule[%s] = %q, want %q", field, got, rule)
		}
	}

	testutil.AssertDiff(t, table.Fields(), []string{"name", "price", "status", "category_id"})
	testutil.AssertDiff(t, inspector.calls, []string{
		"products.name", "products.price", "products.status", "products.category_id",
	})

	status := table.Enum("status")
	if status == nil || status.Default == nil || *status.Default != "draft" {
		t.Errorf("Enum(status) = %+v, want default draft", status)
	}
	if table.Enum("name") != nil {
		t.Error("Enum(name) should be nil")
	}
}

func TestBuildPreservesOrder(t *testing.T) {
	orders := [][]string{
		{"a", "b", "c"},
		{"zeta", "alpha", "mid_id", "beta"},
		{"only"},
	}

	for _, fields := range orders {
		desc := &model.Descriptor{Name: "Thing", Table: "things", Fillable: fields}
		table, err := Build(context.Background(), desc, &mapInspector{})
		testutil.AssertNoError(t, err)

		if diff := cmp.Diff(fields, table.Fields()); diff != "" {
			t.Errorf("field order mismatch (-want +got):\n%s", diff)
		}
		entries := table.Entries()
		for i, e := range entries {
			if e.Field != fields[i] {
				t.Errorf("Entries()[%d] = %q, want %q", i, e.Field, fields[i])
			}
		}
	}
}

func TestBuildMissingColumnsUseSafeDefault(t *testing.T) {
	desc := &model.Descriptor{Name: "Note", Table: "notes", Fillable: []string{"title"}}

	table, err := Build(context.Background(), desc, &mapInspector{})
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, table.Rule("title").String(), "required|string|max:255")
}

func TestBuildNoFillableFields(t *testing.T) {
	inspector := &mapInspector{}
	desc := &model.Descriptor{Name: "Audit", Table: "audits"}

	table, err := Build(context.Background(), desc, inspector)
	testutil.AssertError(t, err, alerr.ErrNoWritableFields)
	if table != nil {
		t.Error("table should be nil on error")
	}
	if len(inspector.calls) != 0 {
		t.Errorf("inspector should not be called, got %v", inspector.calls)
	}
}

func TestBuildInspectorFailure(t *testing.T) {
	boom := errors.New("connection refused")
	table, err := Build(context.Background(), productDescriptor(), &mapInspector{err: boom})

	testutil.AssertError(t, err, alerr.ErrIntrospection)
	if !errors.Is(err, boom) {
		t.Errorf("error should wrap the inspector failure, got %v", err)
	}
	if table != nil {
		t.Error("table should be nil on error")
	}
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, productDescriptor(), &mapInspector{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestBuildLogsToGivenLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Build(context.Background(), productDescriptor(), &mapInspector{}, WithLogger(logger))
	testutil.AssertNoError(t, err)

	out := buf.String()
	testutil.AssertEqual(t, strings.Count(out, "classified field"), 4)
	if !strings.Contains(out, "field=category_id") || !strings.Contains(out, "rule=required|integer") {
		t.Errorf("log output missing field attributes:\n%s", out)
	}
}

// -----------------------------------------------------------------------------
// Table Tests
// -----------------------------------------------------------------------------

func TestTableAddReplacesInPlace(t *testing.T) {
	table := NewTable()
	table.Add(Classify("a", model.ColumnText, nil))
	table.Add(Classify("b", model.ColumnText, nil))
	table.Add(Classify("a", model.ColumnBoolean, nil))

	testutil.AssertEqual(t, table.Len(), 2)
	testutil.AssertDiff(t, table.Fields(), []string{"a", "b"})
	testutil.AssertEqual(t, table.Rule("a").String(), "required|boolean")

	if _, ok := table.Get("missing"); ok {
		t.Error("Get(missing) should report false")
	}
	if table.Rule("missing") != nil {
		t.Error("Rule(missing) should be nil")
	}
}

