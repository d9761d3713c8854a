// Package watch keeps directories under observation and converts entries
// created while the tool is running.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/backmassage/ccpath/internal/config"
	"github.com/backmassage/ccpath/internal/display"
	"github.com/backmassage/ccpath/internal/logging"
	"github.com/backmassage/ccpath/internal/pathconv"
	"github.com/backmassage/ccpath/internal/renamer"
)

// Run performs an initial bottom-up pass over each watched root's contents,
// then blocks converting newly created entries until ctx is cancelled.
// All roots are checked for existence before anything is renamed; a missing
// root aborts the invocation with no mutation.
//
// Watched roots themselves are never renamed: they anchor the watch and act
// as a conversion boundary, like a prefix in full-path mode. Directories
// created at runtime are processed bottom-up and then added to the watch
// list under their converted name.
func Run(ctx context.Context, cfg *config.Config, req pathconv.Request, log *logging.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	var stats renamer.RunStats

	for _, root := range cfg.Paths {
		if _, err := os.Lstat(root); err != nil {
			return fmt.Errorf("%w: '%s'", renamer.ErrPathNotFound, root)
		}
	}

	for _, root := range cfg.Paths {
		info, err := os.Lstat(root)
		if err != nil {
			log.Warn("watch: '%s': %v", root, err)
			continue
		}
		if !info.IsDir() {
			log.Warn("watch: '%s' is not a directory, ignoring", root)
			continue
		}

		initialPass(ctx, cfg, req, log, &stats, root)
		if err := addDirsRecursive(w, root); err != nil {
			return err
		}
		log.Info("watching '%s'", root)
	}

	for {
		select {
		case <-ctx.Done():
			log.Success("%s", display.FormatSummary(stats.Renamed, stats.Skipped, stats.Unchanged, stats.Failed))
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create == 0 {
				continue
			}
			handleCreate(ctx, cfg, req, log, &stats, w, ev.Name)

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch: %v", werr)
		}
	}
}

// initialPass converts everything beneath root (root excluded) so the watch
// starts from a normalized tree.
func initialPass(ctx context.Context, cfg *config.Config, req pathconv.Request, log *logging.Logger, stats *renamer.RunStats, root string) {
	entries, err := renamer.CollectBottomUp(root)
	if err != nil {
		log.Error("walk '%s': %v", root, err)
		stats.Failed++
		return
	}
	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		if entry == root {
			continue
		}
		renamer.ApplyOne(cfg, req, log, stats, entry, config.ModeBasename)
	}
}

// handleCreate converts a newly created entry. New directories are processed
// bottom-up (they may arrive populated, e.g. moved in) and then watched
// under their converted name. Conversions of our own renames surface as
// Create events for already-converted names and fall out as unchanged.
func handleCreate(ctx context.Context, cfg *config.Config, req pathconv.Request, log *logging.Logger, stats *renamer.RunStats, w *fsnotify.Watcher, path string) {
	info, err := os.Lstat(path)
	if err != nil {
		return
	}

	if info.IsDir() {
		newDir, err := renamer.ApplyRecursive(ctx, cfg, req, log, stats, path)
		if err != nil {
			log.Error("walk '%s': %v", path, err)
			stats.Failed++
			return
		}
		if err := addDirsRecursive(w, newDir); err != nil {
			log.Warn("watch: add '%s': %v", newDir, err)
		}
		return
	}

	renamer.ApplyOne(cfg, req, log, stats, path, config.ModeBasename)
}

// addDirsRecursive adds root and every directory beneath it to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
