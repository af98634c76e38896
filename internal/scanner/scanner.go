package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultDirs are tried in order when no directory flag is given.
var defaultDirs = []string{"locales", filepath.Join("src", "locales")}

// DefaultBase is the conventional base locale file name.
const DefaultBase = "en.json"

// Resolve picks the locales directory. An explicit dir must exist; an
// empty dir falls back over the conventional defaults.
func Resolve(dir string) (string, error) {
	if dir != "" {
		info, err := os.Stat(dir)
		if err != nil {
			return "", fmt.Errorf("directory does not exist: %s", dir)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("not a directory: %s", dir)
		}
		return dir, nil
	}

	for _, d := range defaultDirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			return d, nil
		}
	}
	return "", fmt.Errorf("no default directory found (checked ./locales and ./src/locales), specify one with -d")
}

// ListLocales returns the JSON files directly under dir, sorted by path.
func ListLocales(dir string) ([]string, error) {
	pattern := filepath.Join(dir, "*.json")
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}

// BasePath resolves the base locale file. A base containing a path
// separator is used verbatim; a bare name is looked up inside dir, so
// the default en.json comes from the chosen locales directory even when
// a single file elsewhere is being checked.
func BasePath(dir, base string) (string, error) {
	path := base
	if !strings.ContainsAny(base, `/\`) {
		path = filepath.Join(dir, base)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("base file %s not found", path)
	}
	return path, nil
}
