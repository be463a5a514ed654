// Package documents loads the text of resolved resources, preferring buffers already open in the editor.
package documents

import (
	"context"
	"errors"

	"github.com/temirov/tabcopy/internal/resource"
)

var (
	// ErrNotText reports a resource whose content cannot be represented as text.
	ErrNotText = errors.New("resource is not a text document")
	// ErrUnsupportedScheme reports a resource the store has no backing storage for.
	ErrUnsupportedScheme = errors.New("unsupported resource scheme")
)

// Document is a resource paired with its full text and language identifier.
type Document struct {
	Resource   resource.Identifier
	Text       string
	LanguageID string
}

// OpenDocuments exposes the host's in-memory document set.
type OpenDocuments interface {
	FindOpenDocument(identifier resource.Identifier) (Document, bool)
}

// Store loads a document from its backing storage.
type Store interface {
	LoadDocument(ctx context.Context, identifier resource.Identifier) (Document, error)
}
