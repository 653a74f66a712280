// Package testutil provides test helpers for crudgen.
//
// # Golden Files
//
// Rendered artifacts are compared against files in the calling package's
// testdata/ directory. Update them with:
//
//	go test ./... -update-golden
//
// # Example Usage
//
//	func TestBuild(t *testing.T) {
//	    dir := testutil.TempDir(t)
//	    testutil.WriteModel(t, dir, "Product", "fillable: [name]\n")
//
//	    db := testutil.SetupSQLite(t)
//	    testutil.ExecSQL(t, db, `CREATE TABLE products (name VARCHAR(255))`)
//	}
package testutil
