package engine

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ValidateRoot checks that the scan root exists and is a directory. This is
// the only precondition that aborts a run.
func ValidateRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("root path %q: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path %q is not a directory", root)
	}
	return nil
}

// Discover walks the root and returns every regular file beneath it as an
// absolute path, sorted for deterministic dispatch order. Symlinked
// directories are not followed, and unreadable subtrees are skipped rather
// than failing the walk; the scan is strictly read-only.
func Discover(root string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", root, err)
	}

	var files []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %q: %w", absRoot, err)
	}

	sort.Strings(files)
	return files, nil
}
