package book

import (
	"context"

	"readingsoundtrack/internal/platform/bookcatalog"
)

// Catalog defines the contract for the external book catalog.
type Catalog interface {
	ListBooks(ctx context.Context, p bookcatalog.ListParams) ([]*bookcatalog.Record, error)
	GetBook(ctx context.Context, id string) (*bookcatalog.Record, error)
}
