// Package fsutil writes generated files.
package fsutil

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hlop3z/crudgen/internal/alerr"
)

// Default permissions for generated output.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// WriteFileAtomic writes data to path through a temporary file in the same
// directory followed by a rename, creating parent directories as needed.
// Readers see either the old content or the new, never a partial file.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return alerr.Wrap(alerr.ErrWriteFile, err, "failed to create directory").
			WithPath(dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return alerr.Wrap(alerr.ErrWriteFile, err, "failed to create temp file").
			WithPath(path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return alerr.Wrap(alerr.ErrWriteFile, err, "failed to write file").
			WithPath(path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return alerr.Wrap(alerr.ErrWriteFile, err, "failed to write file").
			WithPath(path)
	}
	if err := os.Chmod(tmpName, FilePerm); err != nil {
		_ = os.Remove(tmpName)
		return alerr.Wrap(alerr.ErrWriteFile, err, "failed to set file mode").
			WithPath(path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return alerr.Wrap(alerr.ErrWriteFile, err, "failed to rename temp file").
			WithPath(path)
	}
	return nil
}

// Join resolves the slash-separated rel under root and rejects results that
// escape it.
func Join(root, rel string) (string, error) {
	full := filepath.Join(root, filepath.FromSlash(rel))

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", alerr.Wrap(alerr.ErrWriteFile, err, "failed to resolve directory").WithPath(root)
	}
	absFull, err := filepath.Abs(full)
	if err != nil {
		return "", alerr.Wrap(alerr.ErrWriteFile, err, "failed to resolve path").WithPath(full)
	}
	if absFull != absRoot && !strings.HasPrefix(absFull, absRoot+string(filepath.Separator)) {
		return "", alerr.New(alerr.ErrWriteFile, "path escapes output directory").
			WithPath(rel).
			With("root", root)
	}
	return full, nil
}
