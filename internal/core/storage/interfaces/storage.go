package interfaces

import (
	"context"
	"errors"

	"github.com/zeusync/assetkit/internal/core/storage/index"
)

var (
	// ErrIndexNotFound is returned by Load when nothing has been persisted yet.
	ErrIndexNotFound = errors.New("asset index not found")
)

// IndexStore persists the whole asset index as one unit. Save fully replaces
// prior content.
type IndexStore interface {
	// Load returns the persisted document. On index.ErrMalformed the sections
	// decoded before the failure are returned alongside the error.
	Load(ctx context.Context) (index.Document, error)
	Save(ctx context.Context, doc index.Document) error
	// Location names the backing file for diagnostics.
	Location() string
}

// Closer is implemented by stores holding an open handle.
type Closer interface {
	Close() error
}
