package documents

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/temirov/tabcopy/internal/resource"
	"github.com/temirov/tabcopy/internal/utils"
)

var utf8ByteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// FileStore reads file resources from the local filesystem.
type FileStore struct{}

// NewFileStore constructs a FileStore.
func NewFileStore() *FileStore {
	return &FileStore{}
}

// LoadDocument reads the file named by identifier. Directories, binary files and non-file
// resources are rejected.
//
// #nosec G304
func (store *FileStore) LoadDocument(ctx context.Context, identifier resource.Identifier) (Document, error) {
	if contextError := ctx.Err(); contextError != nil {
		return Document{}, contextError
	}
	if !identifier.IsFile() {
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedScheme, identifier.Scheme)
	}
	filePath := identifier.FilePath()
	fileInformation, statError := os.Stat(filePath)
	if statError != nil {
		return Document{}, fmt.Errorf("stat %s: %w", filePath, statError)
	}
	if fileInformation.IsDir() {
		return Document{}, fmt.Errorf("%w: %s is a directory", ErrNotText, filePath)
	}
	fileData, readError := os.ReadFile(filePath)
	if readError != nil {
		return Document{}, fmt.Errorf("read %s: %w", filePath, readError)
	}
	fileData = bytes.TrimPrefix(fileData, utf8ByteOrderMark)
	if utils.IsBinary(fileData) {
		return Document{}, fmt.Errorf("%w: %s", ErrNotText, filePath)
	}
	return Document{
		Resource:   identifier,
		Text:       string(fileData),
		LanguageID: DetectLanguage(filePath),
	}, nil
}

var _ Store = (*FileStore)(nil)
