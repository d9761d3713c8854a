// Command ccpath renames files and directories by converting the naming
// convention of path components (e.g. "Some File.jpg" -> "some_file.jpg").
//
// It parses flags, overlays the optional YAML defaults file, validates the
// convention tokens before touching the filesystem, and runs either the
// batch renamer or watch mode.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/backmassage/ccpath/internal/config"
	"github.com/backmassage/ccpath/internal/convention"
	"github.com/backmassage/ccpath/internal/logging"
	"github.com/backmassage/ccpath/internal/pathconv"
	"github.com/backmassage/ccpath/internal/renamer"
	"github.com/backmassage/ccpath/internal/watch"
)

func main() {
	cmd := newCommand()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "ccpath: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:        "ccpath",
		Usage:       "rename files and directories by converting naming conventions",
		UsageText:   "ccpath [options] CONVENTION PATH...",
		ArgsUsage:   "CONVENTION PATH...",
		Description: conventionLegend(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "recursive",
				Aliases: []string{"r"},
				Usage:   "recurse into directories, renaming contents before the directory itself",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"d"},
				Usage:   "show the renames that would be performed without doing them",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print a line for every converted path",
			},
			&cli.BoolFlag{
				Name:    "no-clobber",
				Aliases: []string{"n"},
				Usage:   "skip a rename when the destination already exists",
			},
			&cli.BoolFlag{
				Name:    "basename",
				Aliases: []string{"b"},
				Usage:   "convert only the final segment of each path (default)",
			},
			&cli.BoolFlag{
				Name:    "full-path",
				Aliases: []string{"F"},
				Usage:   "convert every segment of each path",
			},
			&cli.StringFlag{
				Name:    "prefix",
				Aliases: []string{"P"},
				Usage:   "leave this leading path portion untouched with --full-path; ignored otherwise",
			},
			&cli.StringFlag{
				Name:    "from",
				Aliases: []string{"f"},
				Usage:   "the current naming convention, if known; improves conversion accuracy",
			},
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "keep running and convert entries created under the given directories",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML defaults file",
				Sources: cli.EnvVars("CCPATH_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "append logs to a file",
			},
			&cli.BoolFlag{Name: "color", Usage: "force colored output"},
			&cli.BoolFlag{Name: "no-color", Usage: "disable colored output"},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := config.DefaultConfig()
	if cmd.IsSet("config") {
		if err := config.LoadFile(cmd.String("config"), &cfg); err != nil {
			return cli.Exit(fmt.Sprintf("ccpath: %v", err), 1)
		}
	}
	applyFlags(cmd, &cfg)

	if args := cmd.Args().Slice(); len(args) > 0 {
		cfg.IntoToken = args[0]
		cfg.Paths = args[1:]
	}

	if cmd.Bool("basename") && cmd.Bool("full-path") {
		return cli.Exit("ccpath: --basename and --full-path are mutually exclusive", 1)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("ccpath: %v", err), 1)
	}

	from, to, err := cfg.Request()
	if err != nil {
		return cli.Exit(fmt.Sprintf("ccpath: %v", err), 1)
	}
	req := pathconv.Request{From: from, To: to}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		return cli.Exit(fmt.Sprintf("ccpath: %v", err), 1)
	}
	defer log.Close()

	// Cancel between entries on SIGINT/SIGTERM; a partially renamed tree is
	// an accepted outcome, there is no rollback.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Watch {
		if err := watch.Run(ctx, &cfg, req, log); err != nil {
			if errors.Is(err, renamer.ErrPathNotFound) {
				return cli.Exit(fmt.Sprintf("ccpath: %v", err), 2)
			}
			return cli.Exit(fmt.Sprintf("ccpath: %v", err), 1)
		}
		return nil
	}

	stats, err := renamer.Run(ctx, &cfg, req, log)
	if err != nil {
		// Only upfront validation fails the batch; per-entry errors are
		// reported by the renamer and reflected in the exit code below.
		return cli.Exit(fmt.Sprintf("ccpath: %v", err), 2)
	}
	if stats.Failed > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

// applyFlags copies explicitly passed flags into cfg, so that file-provided
// defaults hold unless overridden on the command line.
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.Bool("recursive") {
		cfg.Recursive = true
	}
	if cmd.Bool("dry-run") {
		cfg.DryRun = true
	}
	if cmd.Bool("verbose") {
		cfg.Verbose = true
	}
	if cmd.Bool("no-clobber") {
		cfg.NoClobber = true
	}
	if cmd.Bool("watch") {
		cfg.Watch = true
	}
	if cmd.Bool("basename") {
		cfg.Mode = config.ModeBasename
	}
	if cmd.Bool("full-path") {
		cfg.Mode = config.ModeFull
	}
	if cmd.IsSet("prefix") {
		cfg.Prefix = cmd.String("prefix")
	}
	if cmd.IsSet("from") {
		cfg.FromToken = cmd.String("from")
	}
	if cmd.IsSet("log") {
		cfg.LogFile = cmd.String("log")
	}
	if cmd.Bool("no-color") {
		cfg.ColorMode = config.ColorNever
	} else if cmd.Bool("color") {
		cfg.ColorMode = config.ColorAlways
	}
}

func conventionLegend() string {
	var b strings.Builder
	b.WriteString("Supported naming conventions:\n")
	for _, c := range convention.All {
		fmt.Fprintf(&b, "  %-6s %s\n", string(c), c.Example())
	}
	return b.String()
}
