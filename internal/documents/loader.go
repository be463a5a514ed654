package documents

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/temirov/tabcopy/internal/resource"
)

const skippedResourceMessage = "skipping resource"

// Loader resolves identifiers to documents one at a time, in input order.
type Loader struct {
	openDocuments OpenDocuments
	store         Store
	logger        *zap.Logger
}

// NewLoader constructs a Loader. A nil openDocuments set or logger is allowed.
func NewLoader(openDocuments OpenDocuments, store Store, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{openDocuments: openDocuments, store: store, logger: logger}
}

// Stream sends a document for every identifier that can be loaded. Each load completes before the
// next begins. Resources that fail to load are skipped. Stream only returns an error when ctx is done.
func (loader *Loader) Stream(ctx context.Context, identifiers []resource.Identifier, out chan<- Document) error {
	if out == nil {
		return errors.New("documents: output channel is nil")
	}
	for _, identifier := range identifiers {
		if contextError := ctx.Err(); contextError != nil {
			return contextError
		}
		document, loaded := loader.loadOne(ctx, identifier)
		if !loaded {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case out <- document:
		}
	}
	return nil
}

// Load is the synchronous form of Stream: it returns the documents for identifiers in input order,
// omitting those that fail to load. Callers that consume documents as they arrive use Stream.
func (loader *Loader) Load(ctx context.Context, identifiers []resource.Identifier) []Document {
	loadedDocuments := make([]Document, 0, len(identifiers))
	for _, identifier := range identifiers {
		if ctx.Err() != nil {
			break
		}
		if document, loaded := loader.loadOne(ctx, identifier); loaded {
			loadedDocuments = append(loadedDocuments, document)
		}
	}
	return loadedDocuments
}

func (loader *Loader) loadOne(ctx context.Context, identifier resource.Identifier) (Document, bool) {
	if loader.openDocuments != nil {
		if document, found := loader.openDocuments.FindOpenDocument(identifier); found {
			document.Resource = identifier
			return document, true
		}
	}
	if loader.store == nil {
		loader.logger.Debug(skippedResourceMessage, zap.String("resource", identifier.String()), zap.String("reason", "no store"))
		return Document{}, false
	}
	document, loadError := loader.store.LoadDocument(ctx, identifier)
	if loadError != nil {
		loader.logger.Debug(skippedResourceMessage, zap.String("resource", identifier.String()), zap.Error(loadError))
		return Document{}, false
	}
	document.Resource = identifier
	return document, true
}
