// Package docstore provides persistence backends for serialized documents.
//
// Stores deal only in the JSON wire form produced by the document package;
// validation happens before a document is saved, never inside a store.
package docstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a named document does not exist.
var ErrNotFound = errors.New("plotkit: document not found")

// Store persists serialized documents by name. Implementations must be safe
// for concurrent use.
type Store interface {
	// Save persists a serialized document, overwriting any previous
	// version under the same name.
	Save(ctx context.Context, name string, data []byte) error

	// Load retrieves a serialized document by name. Returns ErrNotFound
	// when no document exists under the name.
	Load(ctx context.Context, name string) ([]byte, error)

	// List returns the names of all stored documents, sorted.
	List(ctx context.Context) ([]string, error)

	// Delete removes a document. Deleting a missing document is not an
	// error.
	Delete(ctx context.Context, name string) error
}
