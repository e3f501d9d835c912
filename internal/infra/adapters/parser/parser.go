// parser renders the podspec channel into an RSS 2.0 document with
// Podcasting 2.0 extensions and writes it to file or stdout. It
// implements the ports.ForParsing interface.
package parser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"
	"github.com/sa6mwa/podfeed/internal/app/humanreadable"
	"github.com/sa6mwa/podfeed/internal/app/model"
	"github.com/sa6mwa/podfeed/internal/app/ports"
	"github.com/sa6mwa/podfeed/internal/app/rss"
	"github.com/sa6mwa/podfeed/internal/infra/adapters/logger"
)

var (
	ErrNilPointer    error = errors.New("received nil pointer")
	ErrOutputMissing error = errors.New("podspec has no output filename")
)

// forParsing implements the ports.ForParsing port (interface).
type forParsing struct {
	ports.ForAsking
	stdout io.Writer
}

// New returns a parser using asker to confirm overwriting an output
// file with different content.
func New(asker ports.ForAsking) ports.ForParsing {
	return &forParsing{
		ForAsking: asker,
		stdout:    os.Stdout,
	}
}

func (p *forParsing) Render(_ context.Context, channel *model.Channel) string {
	return rss.Generate(prepare(channel))
}

// prepare returns a shallow copy of channel where items with markdown
// content and no ContentEncoded get the markdown rendered as html
// followed by a chapter listing.
func prepare(channel *model.Channel) *model.Channel {
	c := *channel
	c.Items = make([]model.Item, len(channel.Items))
	copy(c.Items, channel.Items)
	for i := range c.Items {
		it := &c.Items[i]
		if it.ContentEncoded != "" || it.ContentMarkdown == "" {
			continue
		}
		it.ContentEncoded = MarkdownToHTML(it.ContentMarkdown)
		if listing := ChapterListing(it.ChapterMarks); listing != "" {
			it.ContentEncoded += "\n<pre>\n" + listing + "</pre>\n"
		}
	}
	return &c
}

// document is the rendered feed as written to disk.
func (p *forParsing) document(ctx context.Context, spec *model.Podspec) string {
	return p.Render(ctx, &spec.Channel) + "\n"
}

func (p *forParsing) WriteRSS(ctx context.Context, spec *model.Podspec) error {
	l := logger.FromContext(ctx)
	if spec == nil {
		return ErrNilPointer
	}
	if spec.Output == "" {
		return ErrOutputMissing
	}
	doc := p.document(ctx, spec)
	existing, err := os.ReadFile(spec.Output)
	switch {
	case err == nil:
		if string(existing) == doc {
			l.Info("Feed is up to date", "file", spec.Output)
			return nil
		}
		if !p.Ask(ctx, "%s differs from the podspec, overwrite?", spec.Output) {
			l.Info("Not overwriting", "file", spec.Output)
			return nil
		}
	case !errors.Is(err, os.ErrNotExist):
		return err
	}
	if err := os.WriteFile(spec.Output, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("unable to write %s: %w", spec.Output, err)
	}
	l.Info("Wrote feed", "file", spec.Output, "items", len(spec.Channel.Items), "size", len(doc), "humanSize", humanreadable.SI(int64(len(doc))))
	return nil
}

func (p *forParsing) WriteRSSToStdout(ctx context.Context, spec *model.Podspec) error {
	if spec == nil {
		return ErrNilPointer
	}
	_, err := io.WriteString(p.stdout, p.document(ctx, spec))
	return err
}

// Diff compares spec.Output with a fresh rendering of spec.Channel. A
// missing output file is compared as empty.
func (p *forParsing) Diff(ctx context.Context, spec *model.Podspec, w io.Writer) error {
	l := logger.FromContext(ctx)
	if spec == nil {
		return ErrNilPointer
	}
	if spec.Output == "" {
		return ErrOutputMissing
	}
	existing, err := os.ReadFile(spec.Output)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	doc := p.document(ctx, spec)
	if string(existing) == doc {
		l.Info("No differences", "file", spec.Output)
		return nil
	}
	l.Info("Diff follows", "from", spec.Output, "size", len(existing), "humanSize", humanreadable.SI(int64(len(existing))))
	edits := myers.ComputeEdits(span.URIFromPath(spec.Output), string(existing), doc)
	_, err = fmt.Fprint(w, gotextdiff.ToUnified(spec.Output, spec.Output+" (rendered)", string(existing), edits))
	return err
}
