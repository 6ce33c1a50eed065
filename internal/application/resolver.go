package application

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Resolver expands one path specification into the ordered set of regular
// files it denotes. A specification is either a glob pattern, a directory to
// walk recursively, or a direct file reference. A specification that matches
// nothing is a warning, never an error for the batch.
type Resolver struct {
	supportedExt func(path string) bool
	logger       *slog.Logger
}

// NewResolver builds a resolver. supportedExt filters files found during
// directory traversal; direct file references bypass it.
func NewResolver(supportedExt func(path string) bool, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}

	return &Resolver{supportedExt: supportedExt, logger: logger}
}

// Resolve returns the files the specification denotes, without duplicates,
// in a stable discovery order.
func (r *Resolver) Resolve(spec string) []string {
	switch {
	case strings.ContainsAny(spec, "*?["):
		return r.resolvePattern(spec)
	case isDir(spec):
		return r.resolveDir(spec)
	case isRegularFile(spec):
		// Direct file references are always honored, whatever the extension.
		return []string{spec}
	default:
		r.logger.Warn("path does not exist", "path", spec)
		return nil
	}
}

func (r *Resolver) resolvePattern(pattern string) []string {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		r.logger.Warn("bad glob pattern", "pattern", pattern, "error", err)
		return nil
	}
	if len(matches) == 0 {
		r.logger.Warn("no files match pattern", "pattern", pattern)
		return nil
	}

	files := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, match := range matches {
		if !isRegularFile(match) {
			continue
		}
		if _, ok := seen[match]; ok {
			continue
		}
		seen[match] = struct{}{}
		files = append(files, match)
	}

	return files
}

func (r *Resolver) resolveDir(dir string) []string {
	var files []string
	seen := make(map[string]struct{})

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			r.logger.Warn("skipping unreadable directory entry", "path", path, "error", err)
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if r.supportedExt != nil && !r.supportedExt(path) {
			return nil
		}
		if _, ok := seen[path]; ok {
			return nil
		}
		seen[path] = struct{}{}
		files = append(files, path)
		return nil
	})
	if err != nil {
		r.logger.Warn("directory traversal failed", "path", dir, "error", err)
	}

	return files
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
