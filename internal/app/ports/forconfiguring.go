package ports

import (
	"context"

	"github.com/sa6mwa/podfeed/internal/app/model"
)

// ForConfiguring loads the podspec aggregate. Load applies defaults
// and validates, Validate can be used on a podspec built in code.
type ForConfiguring interface {
	Load(ctx context.Context) (*model.Podspec, error)
	Validate(ctx context.Context, spec *model.Podspec) error
}
