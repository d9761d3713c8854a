// Package renamer orchestrates the actual filesystem renames: destination
// computation per mode, clobber policy, parent creation, and the bottom-up
// recursive walk.
package renamer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/backmassage/ccpath/internal/config"
	"github.com/backmassage/ccpath/internal/display"
	"github.com/backmassage/ccpath/internal/logging"
	"github.com/backmassage/ccpath/internal/pathconv"
)

// ErrPathNotFound marks a user-specified input path that does not exist.
// It is batch-fatal and reported before any rename is attempted.
var ErrPathNotFound = errors.New("no such file or directory")

// Run is the top-level batch entry point. All input paths are checked for
// existence up front; a missing path aborts the whole invocation before any
// mutation. Per-entry conversion and rename failures are reported and
// processing continues with the next entry.
func Run(ctx context.Context, cfg *config.Config, req pathconv.Request, log *logging.Logger) (RunStats, error) {
	var stats RunStats

	for _, path := range cfg.Paths {
		if _, err := os.Lstat(path); err != nil {
			return stats, fmt.Errorf("%w: '%s'", ErrPathNotFound, path)
		}
	}

	if cfg.DryRun {
		log.Warn("DRY RUN - no files will be renamed")
	}

	for _, path := range cfg.Paths {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		info, err := os.Lstat(path)
		if cfg.Recursive && err == nil && info.IsDir() {
			if _, err := ApplyRecursive(ctx, cfg, req, log, &stats, path); err != nil {
				log.Error("walk '%s': %v", path, err)
				stats.Failed++
			}
			continue
		}
		ApplyOne(cfg, req, log, &stats, path, cfg.Mode)
	}

	log.Success("%s", display.FormatSummary(stats.Renamed, stats.Skipped, stats.Unchanged, stats.Failed))
	return stats, nil
}

// ApplyOne renames a single entry according to mode. It returns the path the
// entry lives at afterwards (the destination on success, the original path
// when nothing moved) and whether the entry was handled without failure.
func ApplyOne(cfg *config.Config, req pathconv.Request, log *logging.Logger, stats *RunStats, path string, mode config.Mode) (string, bool) {
	stats.Total++

	dest, err := destination(path, cfg.Prefix, req, mode)
	if err != nil {
		log.Error("convert '%s': %v", path, err)
		stats.Failed++
		return path, false
	}

	if dest == path {
		log.Debug(cfg.Verbose, "unchanged: '%s'", path)
		stats.Unchanged++
		return path, true
	}

	if cfg.DryRun {
		log.Info("[DRY] %s", display.FormatMapping(path, dest))
		stats.Renamed++
		return path, true
	}

	if cfg.NoClobber {
		if _, err := os.Lstat(dest); err == nil {
			log.Warn("%s", display.FormatSkip(dest))
			stats.Skipped++
			return path, true
		}
	}

	if parent := filepath.Dir(dest); parent != "." {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			log.Error("create directory '%s': %v", parent, err)
			stats.Failed++
			return path, false
		}
	}

	if err := os.Rename(path, dest); err != nil {
		log.Error("rename '%s': %v", path, err)
		stats.Failed++
		return path, false
	}

	stats.Renamed++
	if cfg.Verbose {
		log.Info("%s", display.FormatMapping(path, dest))
	}
	return dest, true
}

// ApplyRecursive renames every entry under root, the root included, in
// bottom-up order using basename-only semantics per entry. Full-path and
// prefix conversion are not meaningful mid-traversal: ancestors are renamed
// after their contents. It returns the root's post-rename path.
func ApplyRecursive(ctx context.Context, cfg *config.Config, req pathconv.Request, log *logging.Logger, stats *RunStats, root string) (string, error) {
	entries, err := CollectBottomUp(root)
	if err != nil {
		return root, err
	}

	newRoot := root
	for _, entry := range entries {
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		dest, ok := ApplyOne(cfg, req, log, stats, entry, config.ModeBasename)
		if ok && entry == root {
			newRoot = dest
		}
	}
	return newRoot, nil
}

// destination computes the target path for one entry according to mode.
// The prefix only participates in full-path mode, matching its CLI contract.
func destination(path, prefix string, req pathconv.Request, mode config.Mode) (string, error) {
	switch {
	case mode == config.ModeFull && prefix != "":
		return pathconv.ConvertFullExceptPrefix(path, prefix, req)
	case mode == config.ModeFull:
		return pathconv.ConvertFull(path, req)
	default:
		return pathconv.ConvertBasename(path, req)
	}
}
