// Package modulepath implements spec.md §6's module-to-file-path
// mapping and the companion helpers for resolving relative import
// paths against a compilation root, adapted from the teacher's
// internal/utils/path_utils.go (ResolveImportPath/GetModuleDir).
package modulepath

import (
	"path/filepath"
	"strings"
)

// FromSegments maps a module's capitalized name segments to its
// import path: "a module with segments [A, B, C] maps to the import
// path a/b/c (all lowercase, segment-joined by /)".
func FromSegments(segments []string) string {
	lowered := make([]string, len(segments))
	for i, s := range segments {
		lowered[i] = strings.ToLower(s)
	}
	return strings.Join(lowered, "/")
}

// Resolve joins a relative import path onto baseDir, leaving absolute
// or already-rooted paths untouched.
func Resolve(baseDir, importPath string) string {
	if len(importPath) > 0 && importPath[0] == '.' && baseDir != "." && baseDir != "" {
		return filepath.Join(baseDir, importPath)
	}
	return importPath
}

// Dir returns the directory a module's emitted file lives under,
// relative to root.
func Dir(root string, segments []string) string {
	return filepath.Join(root, FromSegments(segments))
}
