package music

import (
	"context"

	"readingsoundtrack/internal/platform/musiccatalog"
)

// Catalog defines the contract for the external music catalog.
type Catalog interface {
	Recommendations(ctx context.Context, q musiccatalog.Query) ([]byte, error)
	Track(ctx context.Context, id string) ([]byte, error)
}
