// Package mirror recreates a set of source subtrees under a backup target's
// destination path and reports weighted progress while doing so.
//
// A mirror operation runs in three steps:
//
//  1. Scaffold: the destination path and one directory per configured
//     subdirectory are created, then 5% is reported.
//  2. For each subdirectory in order, every nested directory is created and
//     then every file is copied. Each item reports progress.
//  3. Cleanup: an optional hook, a no-op unless WithCleanup is given.
//
// Work is strictly sequential. The first failure aborts the run and nothing
// is rolled back.
package mirror

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kebairia/addonsbackup/internal/logger"
	"github.com/kebairia/addonsbackup/internal/target"
)

const dirPerm = 0o755

// Cleanup runs after every subdirectory has been mirrored.
type Cleanup func(ctx context.Context, t *target.BackupTarget) error

func noCleanup(context.Context, *target.BackupTarget) error { return nil }

// Stats counts what a mirror operation wrote.
type Stats struct {
	Directories int
	Files       int
	Bytes       int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides logger.Global.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithCleanup installs the final hook.
func WithCleanup(c Cleanup) Option {
	return func(e *Engine) {
		if c != nil {
			e.cleanup = c
		}
	}
}

// Engine performs mirror operations. It holds no per-run state and may be
// reused, but a single run is not safe to share across goroutines.
type Engine struct {
	log     logger.Logger
	cleanup Cleanup
}

// New returns an Engine with a no-op cleanup step.
func New(opts ...Option) *Engine {
	e := &Engine{
		log:     logger.Global(),
		cleanup: noCleanup,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mirror copies every subdirectory of t into t.DestinationPath. ctx is
// checked before each directory and file, never in the middle of a copy.
// Filesystem failures are returned as *IOError.
func (e *Engine) Mirror(ctx context.Context, t *target.BackupTarget, r Reporter) (Stats, error) {
	if r == nil {
		r = Discard
	}
	var (
		stats Stats
		prog  = &tracker{reporter: r}
		dest  = t.DestinationPath()
		start = time.Now()
	)

	e.log.Info("mirror started",
		"source", t.SourceRoot,
		"destination", dest,
		"subdirectories", len(t.Subdirectories),
	)

	err := e.run(ctx, t, dest, prog, &stats)
	if err != nil {
		e.log.Error("mirror failed",
			"destination", dest,
			"directories", stats.Directories,
			"files", stats.Files,
			"error", err.Error(),
		)
		return stats, err
	}

	e.log.Info("mirror completed",
		"destination", dest,
		"directories", stats.Directories,
		"files", stats.Files,
		"bytes", stats.Bytes,
		"duration", time.Since(start).String(),
	)
	return stats, nil
}

func (e *Engine) run(ctx context.Context, t *target.BackupTarget, dest string, prog *tracker, stats *Stats) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("mirror cancelled: %w", err)
	}
	for _, sub := range t.Subdirectories {
		if _, err := rebase(t.SourceRoot, dest, t.SourceDir(sub)); err != nil {
			return err
		}
	}
	if err := scaffold(t, dest); err != nil {
		return err
	}
	prog.report(ScaffoldPercent, ScaffoldMessage)

	count := len(t.Subdirectories)
	for i, sub := range t.Subdirectories {
		if err := e.mirrorSubdirectory(ctx, t, dest, sub, i+1, count, prog, stats); err != nil {
			return err
		}
	}

	if err := e.cleanup(ctx, t); err != nil {
		return fmt.Errorf("cleanup %s: %w", dest, err)
	}
	return nil
}

// scaffold creates the destination path and one directory per subdirectory.
// Existing directories are fine.
func scaffold(t *target.BackupTarget, dest string) error {
	paths := make([]string, 0, len(t.Subdirectories)+1)
	paths = append(paths, dest)
	for _, sub := range t.Subdirectories {
		paths = append(paths, filepath.Join(dest, sub))
	}
	for _, p := range paths {
		if err := os.MkdirAll(p, dirPerm); err != nil {
			return &IOError{Op: "mkdir", Path: p, Err: err}
		}
	}
	return nil
}

func (e *Engine) mirrorSubdirectory(
	ctx context.Context,
	t *target.BackupTarget,
	dest, sub string,
	index, count int,
	prog *tracker,
	stats *Stats,
) error {
	src := t.SourceDir(sub)
	dirs, files, err := enumerate(src)
	if err != nil {
		return err
	}
	e.log.Debug("subdirectory enumerated",
		"subdirectory", sub,
		"index", index,
		"directories", len(dirs),
		"files", len(files),
	)

	for k, dir := range dirs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("mirror cancelled: %w", err)
		}
		to, err := rebase(t.SourceRoot, dest, dir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(to, dirPerm); err != nil {
			return &IOError{Op: "mkdir", Path: to, Err: err}
		}
		stats.Directories++
		prog.report(
			Percent(PhaseDirectories, k+1, len(dirs), index, count),
			Message(PhaseDirectories, k+1, len(dirs)),
		)
	}

	for k, file := range files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("mirror cancelled: %w", err)
		}
		to, err := rebase(t.SourceRoot, dest, file)
		if err != nil {
			return err
		}
		n, err := copyFile(file, to)
		if err != nil {
			return err
		}
		stats.Files++
		stats.Bytes += n
		prog.report(
			Percent(PhaseFiles, k+1, len(files), index, count),
			Message(PhaseFiles, k+1, len(files)),
		)
	}
	return nil
}

// rebase maps a path under sourceRoot to the same relative path under dest.
func rebase(sourceRoot, dest, path string) (string, error) {
	rel, err := filepath.Rel(sourceRoot, path)
	if err != nil {
		return "", &IOError{Op: "rel", Path: path, Err: err}
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &IOError{Op: "rel", Path: path, Err: ErrOutsideSource}
	}
	return filepath.Join(dest, rel), nil
}
