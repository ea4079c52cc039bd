// Package scan expands file globs and finds class literals in source files.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Stats counts what an expansion found.
type Stats struct {
	FilesDiscovered int // Files matched by the patterns
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Generated or gitignored files
}

// Walker expands glob patterns relative to a project root and filters out
// generated and gitignored files.
type Walker struct {
	root   string
	ignore *ignore.GitIgnore
}

// NewWalker loads root/.gitignore when present. A missing file is fine.
func NewWalker(root string) *Walker {
	if root == "" {
		root = "."
	}
	w := &Walker{root: root}
	if gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore")); err == nil {
		w.ignore = gi
	}
	return w
}

// Root returns the directory patterns are resolved against.
func (w *Walker) Root() string { return w.root }

// isTemplGenerated reports whether path is a templ-generated Go file;
// both _templ.go and .templ.go suffixes occur.
func isTemplGenerated(path string) bool {
	return strings.HasSuffix(path, "_templ.go") ||
		strings.HasSuffix(path, ".templ.go")
}

// Skip reports whether path should be left out. Gitignore rules only apply
// to paths inside the root.
func (w *Walker) Skip(path string) bool {
	if isTemplGenerated(path) {
		return true
	}
	if w.ignore == nil {
		return false
	}

	rel := path
	if filepath.IsAbs(path) {
		absRoot, err := filepath.Abs(w.root)
		if err != nil {
			return false
		}
		if rel, err = filepath.Rel(absRoot, path); err != nil {
			return false
		}
	} else if w.root != "." {
		var err error
		if rel, err = filepath.Rel(w.root, path); err != nil {
			return false
		}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return w.ignore.MatchesPath(filepath.ToSlash(rel))
}

// Expand returns the regular files matched by patterns, deduplicated and
// sorted. Relative patterns are resolved against the root.
func (w *Walker) Expand(patterns []string) ([]string, Stats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := Stats{}

	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) && w.root != "." {
			pattern = filepath.Join(w.root, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if w.Skip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// RelativePath returns path relative to the working directory when
// possible.
func RelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}
	return rel
}
