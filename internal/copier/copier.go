// Package copier copies the active tab and the tabs to its right into the clipboard as Markdown.
package copier

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/tabcopy/internal/documents"
	"github.com/temirov/tabcopy/internal/markdown"
	"github.com/temirov/tabcopy/internal/resource"
	"github.com/temirov/tabcopy/internal/services/clipboard"
	"github.com/temirov/tabcopy/internal/tabs"
)

const (
	// NoTabsMessage is shown when there is no active tab to start from.
	NoTabsMessage = "No tabs to copy"
	// NoTextDocumentsMessage is shown when none of the selected tabs shows a text document.
	NoTextDocumentsMessage = "No text documents to copy"
	// CopiedMessageFormat reports the number of documents written to the clipboard.
	CopiedMessageFormat = "Copied %d file(s) to clipboard"

	errorClipboardFormat = "copy markdown to clipboard: %w"
	errorLoadFormat      = "load documents: %w"
)

// Notifier shows a message to the user.
type Notifier interface {
	ShowInfo(message string)
}

// Dependencies lists the collaborators a Service needs.
type Dependencies struct {
	Groups    tabs.GroupQuery
	Loader    *documents.Loader
	Workspace markdown.PathLookup
	Clipboard clipboard.Copier
	Notifier  Notifier
	Logger    *zap.Logger
}

// Result describes one copy invocation.
type Result struct {
	Selected int
	Resolved int
	Copied   int
	Markdown string
	Message  string
}

// Service runs the copy operation. It keeps no state between invocations.
type Service struct {
	groups    tabs.GroupQuery
	loader    *documents.Loader
	workspace markdown.PathLookup
	clipboard clipboard.Copier
	notifier  Notifier
	logger    *zap.Logger
}

// NewService validates dependencies and constructs a Service.
func NewService(dependencies Dependencies) (*Service, error) {
	if dependencies.Groups == nil {
		return nil, errors.New("copier: tab group query is required")
	}
	if dependencies.Loader == nil {
		return nil, errors.New("copier: document loader is required")
	}
	if dependencies.Clipboard == nil {
		return nil, errors.New("copier: clipboard is required")
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	notifier := dependencies.Notifier
	if notifier == nil {
		notifier = NewLoggerNotifier(logger)
	}
	return &Service{
		groups:    dependencies.Groups,
		loader:    dependencies.Loader,
		workspace: dependencies.Workspace,
		clipboard: dependencies.Clipboard,
		notifier:  notifier,
		logger:    logger,
	}, nil
}

// CopyTabs selects, resolves, loads and renders the tabs and writes the Markdown to the clipboard.
// Exactly one notification is shown unless the clipboard write fails, in which case the error is returned.
func (service *Service) CopyTabs(ctx context.Context) (Result, error) {
	var result Result

	selectedTabs := tabs.SelectFromActive(service.groups)
	result.Selected = len(selectedTabs)
	if len(selectedTabs) == 0 {
		return service.finish(result, NoTabsMessage), nil
	}

	identifiers := tabs.ResolveResources(selectedTabs)
	result.Resolved = len(identifiers)
	if len(identifiers) == 0 {
		return service.finish(result, NoTextDocumentsMessage), nil
	}

	loadedDocuments, loadError := service.loadDocuments(ctx, identifiers)
	if loadError != nil {
		return result, fmt.Errorf(errorLoadFormat, loadError)
	}

	result.Copied = len(loadedDocuments)
	result.Markdown = markdown.Render(loadedDocuments, service.workspace)
	if copyError := service.clipboard.Copy(result.Markdown); copyError != nil {
		return result, fmt.Errorf(errorClipboardFormat, copyError)
	}
	service.logger.Debug("clipboard updated",
		zap.Int("selected", result.Selected),
		zap.Int("resolved", result.Resolved),
		zap.Int("copied", result.Copied),
		zap.Int("bytes", len(result.Markdown)),
	)
	return service.finish(result, fmt.Sprintf(CopiedMessageFormat, result.Copied)), nil
}

func (service *Service) finish(result Result, message string) Result {
	result.Message = message
	service.notifier.ShowInfo(message)
	return result
}

// loadDocuments streams documents from a single sequential producer into a collector.
// Order matches identifiers because only one load is in flight at a time.
func (service *Service) loadDocuments(ctx context.Context, identifiers []resource.Identifier) ([]documents.Document, error) {
	group, streamCtx := errgroup.WithContext(ctx)
	loaded := make(chan documents.Document)
	collected := make([]documents.Document, 0, len(identifiers))

	group.Go(func() error {
		defer close(loaded)
		return service.loader.Stream(streamCtx, identifiers, loaded)
	})

	group.Go(func() error {
		for {
			select {
			case <-streamCtx.Done():
				return streamCtx.Err()
			case document, ok := <-loaded:
				if !ok {
					return nil
				}
				collected = append(collected, document)
			}
		}
	})

	if waitError := group.Wait(); waitError != nil {
		return nil, waitError
	}
	return collected, nil
}
