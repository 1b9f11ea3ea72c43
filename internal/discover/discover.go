// Package discover walks the source tree once and collects candidate
// files for conversion. The walk is single-threaded; it is the
// serialization point before the pipeline fans out.
package discover

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Options controls one traversal.
type Options struct {
	// Match reports whether a file name is a conversion candidate.
	Match func(path string) bool

	// FollowSymlinks makes directory symlinks traversed like directories.
	// Resolved directories are tracked so cycles are walked once.
	FollowSymlinks bool
}

// Broken is a candidate that matched but cannot be read: a dangling
// symlink or an unresolvable path. Broken candidates are reported, never
// dispatched.
type Broken struct {
	Path string
	Err  error
}

// Result is what one traversal produced.
type Result struct {
	Candidates []string
	Broken     []Broken
	Duration   time.Duration
}

// Walk traverses root recursively and returns every file whose name
// matches. Unreadable subdirectories are logged and skipped; a
// directory-level failure is never fatal to the walk. Only a missing or
// unreadable root is an error.
func Walk(root string, opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "discover")

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source root %s is not a directory", root)
	}

	w := &walker{
		opts:    opts,
		logger:  logger,
		visited: make(map[string]bool),
	}
	w.markVisited(root)

	start := time.Now()
	w.walkDir(root)

	return &Result{
		Candidates: w.candidates,
		Broken:     w.broken,
		Duration:   time.Since(start),
	}, nil
}

type walker struct {
	opts       Options
	logger     *slog.Logger
	visited    map[string]bool
	candidates []string
	broken     []Broken
}

func (w *walker) walkDir(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.logger.Warn("skipping unreadable directory", "dir", dir, "error", err)
		return
	}

	// os.ReadDir sorts by name, so candidate order is deterministic
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		switch {
		case entry.IsDir():
			if !w.markVisited(path) {
				continue
			}
			w.walkDir(path)
		case entry.Type()&os.ModeSymlink != 0:
			w.walkSymlink(path)
		default:
			if w.opts.Match(path) {
				w.candidates = append(w.candidates, path)
			}
		}
	}
}

// walkSymlink resolves a symlink entry. Links to directories are
// traversed when following is enabled; links to files are candidates like
// regular files; dangling links that would otherwise match are broken
// candidates.
func (w *walker) walkSymlink(path string) {
	info, err := os.Stat(path)
	if err != nil {
		if w.opts.Match(path) {
			w.broken = append(w.broken, Broken{Path: path, Err: err})
		} else {
			w.logger.Warn("skipping dangling symlink", "path", path, "error", err)
		}
		return
	}

	if info.IsDir() {
		if !w.opts.FollowSymlinks {
			return
		}
		if !w.markVisited(path) {
			return
		}
		w.walkDir(path)
		return
	}

	if w.opts.Match(path) {
		w.candidates = append(w.candidates, path)
	}
}

// markVisited records the resolved identity of dir and reports whether it
// was new. Tracking resolved paths keeps symlink cycles from looping.
func (w *walker) markVisited(dir string) bool {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		resolved = dir
	}
	if w.visited[resolved] {
		return false
	}
	w.visited[resolved] = true
	return true
}
