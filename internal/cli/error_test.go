package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/hlop3z/crudgen/internal/alerr"
)

// ---------------------------------------------------------------------------
// FormatError
// ---------------------------------------------------------------------------

func TestFormatErrorCoded(t *testing.T) {
	err := alerr.New(alerr.ErrModelNotFound, "model does not exist").
		WithModel("Prodcut").
		WithPath("models/Prodcut.yaml").
		With("suggestion", "Product").
		WithHelp("did you mean 'Product'?")

	output := FormatError(err)

	checks := []string{
		"error[E1001]: model does not exist",
		"--> models/Prodcut.yaml",
		"| model: Prodcut",
		"help: did you mean 'Product'?",
	}
	for _, want := range checks {
		if !strings.Contains(output, want) {
			t.Errorf("FormatError output missing %q\ngot:\n%s", want, output)
		}
	}
	for _, unwanted := range []string{"path:", "suggestion:", "helps:"} {
		if strings.Contains(output, unwanted) {
			t.Errorf("FormatError output should not contain %q\ngot:\n%s", unwanted, output)
		}
	}
}

func TestFormatErrorContextIsSorted(t *testing.T) {
	err := alerr.New(alerr.ErrIntrospection, "failed to inspect column").
		WithTable("products").
		WithColumn("price").
		WithModel("Product")

	output := FormatError(err)

	col := strings.Index(output, "column: price")
	mdl := strings.Index(output, "model: Product")
	tbl := strings.Index(output, "table: products")
	if col == -1 || mdl == -1 || tbl == -1 {
		t.Fatalf("missing context lines:\n%s", output)
	}
	if !(col < mdl && mdl < tbl) {
		t.Errorf("context should be sorted by key:\n%s", output)
	}
}

func TestFormatErrorCause(t *testing.T) {
	err := alerr.Wrap(alerr.ErrSQLConnection, errors.New("connection refused"), "failed to open database")

	output := FormatError(err)
	if !strings.Contains(output, "cause: connection refused") {
		t.Errorf("FormatError should show the cause\ngot:\n%s", output)
	}
}

func TestFormatErrorWrappedChain(t *testing.T) {
	inner := alerr.New(alerr.ErrNoWritableFields, "no fillable fields found")
	output := FormatError(fmt.Errorf("generate: %w", inner))

	if !strings.HasPrefix(output, "error[E1003]") {
		t.Errorf("coded error inside a chain should be found\ngot:\n%s", output)
	}
}

func TestFormatErrorGeneric(t *testing.T) {
	output := FormatError(errors.New("something broke"))
	if output != "error: something broke\n" {
		t.Errorf("FormatError() = %q", output)
	}
	if FormatError(nil) != "" {
		t.Error("FormatError(nil) should be empty")
	}
}

// ---------------------------------------------------------------------------
// One-line diagnostics
// ---------------------------------------------------------------------------

func TestFormatLines(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"warning", FormatWarning("routes file missing"), "warning: routes file missing\n"},
		{"note", FormatNote("dry run"), "note: dry run\n"},
		{"help", FormatHelp("run crudgen init"), "help: run crudgen init\n"},
		{"success", FormatSuccess("done"), "success: done\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}
