package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ignoredDirs are build and dependency folders never descended into.
var ignoredDirs = map[string]struct{}{
	"target":       {},
	"build":        {},
	"node_modules": {},
	"__pycache__":  {},
}

// Discover returns the candidate source files under root in lexical order.
//
// When root is a directory, every regular file below it whose extension is
// in the language table is returned, except files under one of the ignored
// directories. When root is anything else (a file, or a path that cannot be
// stat'ed) the result is just root, with no extension filtering, so the
// caller surfaces the read error.
func Discover(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return []string{root}, nil
	}

	// WalkDir does not follow a symlinked root, so walk its target and
	// report paths under the name the caller used.
	walkRoot := root
	if li, lerr := os.Lstat(root); lerr == nil && li.Mode()&fs.ModeSymlink != 0 {
		resolved, rerr := filepath.EvalSymlinks(root)
		if rerr != nil {
			return nil, fmt.Errorf("resolving %s: %w", root, rerr)
		}
		walkRoot = resolved
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subtree: skip it and keep walking.
			if d != nil && d.IsDir() && path != walkRoot {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != walkRoot && IsIgnoredDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		if !Known(filepath.Ext(path)) {
			return nil
		}
		if hasIgnoredSegment(walkRoot, path) {
			return nil
		}

		if walkRoot != root {
			rel, relErr := filepath.Rel(walkRoot, path)
			if relErr != nil {
				return relErr
			}
			path = filepath.Join(root, rel)
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// IsIgnoredDir reports whether a directory with the given base name is
// excluded from discovery.
func IsIgnoredDir(name string) bool {
	_, ok := ignoredDirs[name]
	return ok
}

// hasIgnoredSegment reports whether any segment of path below root is an
// ignored directory name.
func hasIgnoredSegment(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	for _, seg := range strings.Split(filepath.ToSlash(rel), "/") {
		if IsIgnoredDir(seg) {
			return true
		}
	}
	return false
}
