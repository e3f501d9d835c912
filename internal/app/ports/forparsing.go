package ports

import (
	"context"
	"io"

	"github.com/sa6mwa/podfeed/internal/app/model"
)

// ForParsing should produce a podcast RSS feed from the model.
type ForParsing interface {
	// Render returns the feed document of channel. channel is not
	// modified.
	Render(ctx context.Context, channel *model.Channel) string
	// WriteRSS renders spec.Channel into spec.Output. Implementations
	// should use ForAsking before replacing a file with different
	// content.
	WriteRSS(ctx context.Context, spec *model.Podspec) error
	// WriteRSSToStdout renders spec.Channel to standard output.
	WriteRSSToStdout(ctx context.Context, spec *model.Podspec) error
	// Diff writes a unified diff between spec.Output on disk and a
	// fresh rendering of spec.Channel to w.
	Diff(ctx context.Context, spec *model.Podspec, w io.Writer) error
}
