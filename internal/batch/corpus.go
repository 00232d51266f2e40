// Package batch finds lesson files and measures cleaning runs over them.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// OutputPrefix marks files written by a cleaning run. LoadDir skips them
// so a directory can be cleaned repeatedly.
const OutputPrefix = "clean_"

// File is one lesson file and the path its cleaned copy is written to.
type File struct {
	Path   string
	Output string
}

// NewFile pairs path with its default output beside it.
func NewFile(path string) File {
	return File{Path: path, Output: OutputPath(path)}
}

// OutputPath returns the cleaned-copy path for path: clean_<name> in the
// same directory.
func OutputPath(path string) string {
	return filepath.Join(filepath.Dir(path), OutputPrefix+filepath.Base(path))
}

// LoadDir lists the .json lesson files in dir, sorted by name.
func LoadDir(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var files []File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".json" || strings.HasPrefix(name, OutputPrefix) {
			continue
		}
		files = append(files, NewFile(filepath.Join(dir, name)))
	}

	slices.SortFunc(files, func(a, b File) int { return strings.Compare(a.Path, b.Path) })
	return files, nil
}
