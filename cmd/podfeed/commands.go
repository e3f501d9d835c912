package main

import (
	"os"
	"runtime"

	"github.com/sa6mwa/podfeed/internal/app/model"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/asker"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/chapterizer"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/configurator"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/logger"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/parser"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

// loadAll loads and validates every podspec given with --spec
// concurrently. Nothing is returned unless all of them load.
func loadAll(c *cli.Context) ([]*model.Podspec, error) {
	files := c.StringSlice("spec")
	specs := make([]*model.Podspec, len(files))
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		g.Go(func() error {
			spec, err := configurator.New(file).Load(ctx)
			if err != nil {
				return err
			}
			specs[i] = spec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return specs, nil
}

func generate(c *cli.Context) error {
	specs, err := loadAll(c)
	if err != nil {
		return err
	}
	dryRun := c.Bool("dry-run")
	p := parser.New(asker.New(dryRun, c.Bool("force")))
	for _, spec := range specs {
		if dryRun {
			err = p.WriteRSSToStdout(c.Context, spec)
		} else {
			err = p.WriteRSS(c.Context, spec)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func diff(c *cli.Context) error {
	specs, err := loadAll(c)
	if err != nil {
		return err
	}
	p := parser.New(asker.New(true, false))
	for _, spec := range specs {
		if err := p.Diff(c.Context, spec, os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

func validate(c *cli.Context) error {
	l := logger.FromContext(c.Context)
	specs, err := loadAll(c)
	if err != nil {
		return err
	}
	for i, spec := range specs {
		l.Info("Podspec is valid", "file", c.StringSlice("spec")[i], "title", spec.Channel.Title, "items", len(spec.Channel.Items))
	}
	return nil
}

func chapters(c *cli.Context) error {
	l := logger.FromContext(c.Context)
	specs, err := loadAll(c)
	if err != nil {
		return err
	}
	ch := chapterizer.New(asker.New(false, c.Bool("force")))
	total := 0
	for _, spec := range specs {
		n, err := ch.WriteChapters(c.Context, spec)
		total += n
		if err != nil {
			return err
		}
	}
	l.Info("Done", "chaptersFiles", total)
	return nil
}
