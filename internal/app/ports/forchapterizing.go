package ports

import (
	"context"

	"github.com/sa6mwa/podfeed/internal/app/model"
)

// ForChapterizing writes the chapters files referenced by
// podcast:chapters from the chapter marks of each item.
type ForChapterizing interface {
	ForAsking
	// WriteChapters returns the number of chapters files written.
	WriteChapters(ctx context.Context, spec *model.Podspec) (int, error)
}
