// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"go.astrophena.name/comment/internal/cli"
	"go.astrophena.name/comment/internal/cli/envflag"
	"go.astrophena.name/comment/internal/comment"
	"go.astrophena.name/comment/internal/config"
	"go.astrophena.name/comment/internal/dateformat"
	"go.astrophena.name/comment/internal/filetimes"
	"go.astrophena.name/comment/internal/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	configPath *string
	sets       []string
	author     string
	format     string
	dry        bool
	verbose    bool
}

func (a *app) EnvFlags(fs *flag.FlagSet, env *cli.Env) {
	a.configPath = envflag.Value("config", "COMMENT_CONFIG", config.DefaultPath(env.Getenv), "Configuration file `path`.", fs, env.Getenv)
	fs.Func("set", "Save `key=value` to the configuration file. Can be repeated.", func(s string) error {
		a.sets = append(a.sets, s)
		return nil
	})
	fs.StringVar(&a.author, "author", "", "Author `name` for new header blocks, instead of the configured one.")
	fs.StringVar(&a.format, "format", "", "Date format `pattern`, instead of the configured one.")
	fs.BoolVar(&a.dry, "dry", false, "Print what would be done, but don't change files.")
	fs.BoolVar(&a.verbose, "v", false, "Log debug messages.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	level := new(slog.LevelVar)
	if a.verbose {
		level.Set(slog.LevelDebug)
	}
	ctx = logger.Put(ctx, logger.New(env.Stderr, level))

	if len(env.Args) == 0 && len(a.sets) == 0 {
		return fmt.Errorf("%w: at least one file is required", cli.ErrInvalidArgs)
	}

	for _, s := range a.sets {
		key, value, err := config.ParseAssignment(s)
		if err != nil {
			return fmt.Errorf("%w: -set: %w", cli.ErrInvalidArgs, err)
		}
		if err := config.Set(*a.configPath, key, value); err != nil {
			return err
		}
		logger.Info(ctx, "saved configuration", slog.String("key", key), slog.String("path", *a.configPath))
	}
	if len(env.Args) == 0 {
		return nil
	}

	cfg, err := config.Load(*a.configPath, env.Getenv, config.Config{
		Author:     a.author,
		DateFormat: a.format,
	})
	if err != nil {
		return err
	}
	logger.Debug(ctx, "loaded configuration",
		slog.String("path", *a.configPath),
		slog.String("author", cfg.Author),
		slog.String("date_format", cfg.DateFormat),
		slog.Int("backups", cfg.Backups),
	)

	opts := comment.Options{DryRun: a.dry, Backups: cfg.Backups}

	// Files are handled one by one, in order. A failure is reported and the
	// next file is still processed.
	var errs []error
	for _, path := range env.Args {
		action, err := stamp(ctx, cfg, opts, path)
		if err != nil {
			logger.Error(ctx, "failed to process file", slog.String("path", path), slog.Any("err", err))
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		if a.dry {
			fmt.Fprintf(env.Stdout, "%s: %s\n", path, action)
		}
	}

	// Already logged above.
	return cli.Unprintable(errors.Join(errs...))
}

func stamp(ctx context.Context, cfg config.Config, opts comment.Options, path string) (comment.Action, error) {
	times, err := filetimes.Get(path)
	if err != nil {
		return comment.ActionNone, fmt.Errorf("%w: %w", comment.ErrFileNotReadable, err)
	}
	date := dateformat.Format(times.Modify.UTC(), cfg.DateFormat)
	fc := comment.NewFileContext(path, cfg.Author, date, times)
	return comment.Process(ctx, fc, opts)
}
