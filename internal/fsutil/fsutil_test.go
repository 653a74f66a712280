package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hlop3z/crudgen/internal/alerr"
	"github.com/hlop3z/crudgen/internal/testutil"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := testutil.TempDir(t)
	path := filepath.Join(dir, "app", "Http", "Requests", "StoreProductRequest.php")

	testutil.AssertNoError(t, WriteFileAtomic(path, []byte("first")))
	testutil.AssertEqual(t, testutil.ReadFile(t, path), "first")

	// Overwrites unconditionally.
	testutil.AssertNoError(t, WriteFileAtomic(path, []byte("second")))
	testutil.AssertEqual(t, testutil.ReadFile(t, path), "second")

	info, err := os.Stat(path)
	testutil.AssertNoError(t, err)
	if info.Mode().Perm() != FilePerm {
		t.Errorf("mode = %v, want %v", info.Mode().Perm(), FilePerm)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	testutil.AssertNoError(t, err)
	if len(entries) != 1 {
		t.Errorf("expected no leftover temp files, got %d entries", len(entries))
	}
}

func TestWriteFileAtomicParentIsFile(t *testing.T) {
	dir := testutil.TempDir(t)
	blocker := filepath.Join(dir, "app")
	testutil.WriteFile(t, blocker, "not a directory")

	err := WriteFileAtomic(filepath.Join(blocker, "x.php"), []byte("x"))
	testutil.AssertError(t, err, alerr.ErrWriteFile)
}

func TestJoin(t *testing.T) {
	root := testutil.TempDir(t)

	tests := []struct {
		rel     string
		wantErr bool
	}{
		{"Http/Requests/StoreProductRequest.php", false},
		{"views/products/index.blade.php", false},
		{"../outside.php", true},
		{"views/../../outside.php", true},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			got, err := Join(root, tt.rel)
			if tt.wantErr {
				testutil.AssertError(t, err, alerr.ErrWriteFile)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, filepath.Join(root, filepath.FromSlash(tt.rel)))
		})
	}
}
