package concat

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// ReadWorkDirs reads work directory roots from the given file, one per line.
// Lines that are not existing directories are dropped. A missing work file is
// not an error; it simply yields no directories.
func ReadWorkDirs(workFile string, logger *zap.Logger) []string {
	content, err := os.ReadFile(workFile)
	if err != nil {
		logger.Debug("Work file not readable, skipping", zap.String("workFile", workFile), zap.Error(err))
		return nil
	}

	var dirs []string
	for _, line := range strings.Split(string(content), "\n") {
		dir := strings.TrimSpace(line)
		if dir == "" {
			continue
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			logger.Debug("Skipping non-directory work entry", zap.String("entry", dir))
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			logger.Warn("Failed to resolve work directory", zap.String("dir", dir), zap.Error(err))
			continue
		}
		dirs = append(dirs, abs)
	}
	return dirs
}

// ExpandInputs expands each positional argument into file references, in
// argument order. A path naming a directory expands to that directory's
// direct regular-file entries sorted lexicographically by name; the entry
// name becomes the label. Any other path is kept as given, with the user's
// spelling as the label, and resolved later against the work directories.
func ExpandInputs(paths []string, logger *zap.Logger) ([]FileRef, error) {
	var refs []FileRef
	for _, path := range paths {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			dirRefs, err := listDirectory(path, logger)
			if err != nil {
				return nil, err
			}
			refs = append(refs, dirRefs...)
			continue
		}
		refs = append(refs, FileRef{Path: path, Label: path})
	}
	return refs, nil
}

// listDirectory collects the direct regular-file entries of dir in sorted
// name order. An empty directory is an error rather than a silent empty
// output, so an operator typo fails fast.
func listDirectory(dir string, logger *zap.Logger) ([]FileRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, dir)
	}

	logger.Debug("Expanded directory input",
		zap.String("directory", dir),
		zap.Int("fileCount", len(names)))

	refs := make([]FileRef, 0, len(names))
	for _, name := range names {
		refs = append(refs, FileRef{Path: filepath.Join(dir, name), Label: name})
	}
	return refs, nil
}

// ResolveRefs resolves every reference path against the work directories.
// Labels are left untouched.
func ResolveRefs(refs []FileRef, workDirs []string) []FileRef {
	resolved := make([]FileRef, len(refs))
	for i, ref := range refs {
		resolved[i] = FileRef{Path: ResolvePath(ref.Path, workDirs), Label: ref.Label}
	}
	return resolved
}

// ResolvePath locates path against the work directories. An absolute path
// to an existing file passes through. Otherwise each work directory is tried
// in order, first as-is, then with a ".txt" suffix when the path has no
// extension. Unresolved paths fall back to their absolute form, again
// preferring the ".txt" variant when that exists.
func ResolvePath(path string, workDirs []string) string {
	if filepath.IsAbs(path) && isRegularFile(path) {
		return path
	}

	hasExt := filepath.Ext(path) != ""
	for _, dir := range workDirs {
		candidate := filepath.Join(dir, path)
		if isRegularFile(candidate) {
			return candidate
		}
		if !hasExt && isRegularFile(candidate+".txt") {
			return candidate + ".txt"
		}
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if !hasExt && isRegularFile(abs+".txt") {
		return abs + ".txt"
	}
	return abs
}

// isRegularFile reports whether path names an existing regular file.
func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
