package entities

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// ValidateDatabaseDirectory checks a user supplied database directory and
// returns it as given, minus surrounding whitespace. The checks run against the
// cleaned path. The directory itself does not have to exist yet, but its
// parent must exist and be writable.
func ValidateDatabaseDirectory(fsys afero.Fs, rawPath string) (string, error) {
	path := strings.TrimSpace(rawPath)

	if path == "" {
		return "", ValidationError("Database directory cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return "", ValidationError("Database directory contains invalid characters")
	}

	if !filepath.IsAbs(path) {
		return "", ValidationError("Database directory must be an absolute path: %s", path)
	}

	// Checked before cleaning, which would silently resolve the ".." away.
	if hasParentSegment(path) {
		return "", ValidationError("Database directory must not contain path traversal segments ('..'): %s", path)
	}

	cleanPath := filepath.Clean(path)

	if info, err := lstat(fsys, cleanPath); err == nil {
		if info.Mode()&os.ModeSymlink != 0 {
			return "", ValidationError("Database directory must not be a symbolic link: %s", cleanPath)
		}
		if !info.IsDir() {
			return "", ValidationError("Database directory is not a directory: %s", cleanPath)
		}
	}

	parent := filepath.Dir(cleanPath)
	info, err := fsys.Stat(parent)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ValidationError("Parent directory does not exist: %s", parent)
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", ValidationError("Parent directory is not accessible: %s", parent)
		}
		return "", ValidationError("Cannot access parent directory: %s", parent)
	}
	if !info.IsDir() {
		return "", ValidationError("Parent path is not a directory: %s", parent)
	}

	if err := checkWritable(fsys, parent); err != nil {
		return "", ValidationError("Parent directory is not writable: %s", parent)
	}

	return path, nil
}

func hasParentSegment(path string) bool {
	segments := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	for _, segment := range segments {
		if segment == ".." {
			return true
		}
	}
	return false
}

func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if lstater, ok := fsys.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

// checkWritable creates and removes a temporary file in dir.
func checkWritable(fsys afero.Fs, dir string) error {
	f, err := afero.TempFile(fsys, dir, ".lifebook_write_test_*")
	if err != nil {
		return err
	}
	name := f.Name()
	if err := f.Close(); err != nil {
		return err
	}
	return fsys.Remove(name)
}
