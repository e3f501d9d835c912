package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sa6mwa/podfeed/internal/infra/adapters/configurator"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "podfeed",
		Usage: "Render RSS 2.0 podcast feeds with Podcasting 2.0 tags from podspec yaml files.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				EnvVars: []string{"PODFEED_LOG_LEVEL"},
				Usage:   "Log level, one of debug, info, warn or error",
			},
		},
		Before: func(c *cli.Context) error {
			lvl, err := logger.ParseLevel(c.String("log-level"))
			if err != nil {
				return err
			}
			c.Context = logger.WithLogger(c.Context, logger.New(lvl))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "generate",
				Aliases: []string{"g"},
				Usage:   "Render the feed of each podspec to its output file",
				Action:  generate,
				Flags: []cli.Flag{
					specFlag(),
					forceFlag(),
					&cli.BoolFlag{
						Name:    "dry-run",
						Aliases: []string{"n"},
						Value:   false,
						Usage:   "Write feeds to stdout instead of file",
					},
				},
			},
			{
				Name:    "diff",
				Aliases: []string{"d"},
				Usage:   "Show a unified diff between each output file and a fresh rendering",
				Action:  diff,
				Flags:   []cli.Flag{specFlag()},
			},
			{
				Name:    "validate",
				Aliases: []string{"v"},
				Usage:   "Load and validate podspec files without writing anything",
				Action:  validate,
				Flags:   []cli.Flag{specFlag()},
			},
			{
				Name:    "chapters",
				Aliases: []string{"c"},
				Usage:   fmt.Sprintf("Write JSON chapters files from chapterMarks into localStorageDir of %s", configurator.DefaultSpecfile),
				Action:  chapters,
				Flags:   []cli.Flag{specFlag(), forceFlag()},
			},
		},
	}
	ctx := logger.WithDefaultLogger(context.Background())
	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.FromContext(ctx).Error("Command failed", "error", err)
		os.Exit(1)
	}
}

// Each command gets its own flag instances.

func specFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "spec",
		Aliases: []string{"s"},
		Value:   cli.NewStringSlice(configurator.DefaultSpecfile),
		Usage:   "Podspec yaml file describing the feed, can be given more than once",
	}
}

func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Value:   false,
		Usage:   "Force, do not ask before overwriting a file, just do it",
	}
}
