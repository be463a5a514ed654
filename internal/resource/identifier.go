// Package resource models the identifiers that name editor content.
package resource

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/temirov/tabcopy/internal/utils"
)

const (
	// SchemeFile identifies resources backed by the local filesystem.
	SchemeFile = "file"
	// SchemeUntitled identifies unsaved buffers that have never been written to disk.
	SchemeUntitled = "untitled"

	minimumSchemeLength = 2
)

var errEmptyResource = errors.New("empty resource identifier")

// Identifier is a canonical, comparable handle to a unit of content.
// Two identifiers refer to the same content when their String forms are equal.
type Identifier struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// FromFilePath builds a file identifier for a filesystem path, resolving it to an absolute path.
func FromFilePath(filePath string) (Identifier, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if trimmedPath == "" {
		return Identifier{}, errEmptyResource
	}
	absolutePath, absoluteError := filepath.Abs(trimmedPath)
	if absoluteError != nil {
		return Identifier{}, fmt.Errorf("resolve absolute path for %s: %w", trimmedPath, absoluteError)
	}
	slashPath := filepath.ToSlash(filepath.Clean(absolutePath))
	if !strings.HasPrefix(slashPath, "/") {
		slashPath = "/" + slashPath
	}
	return Identifier{Scheme: SchemeFile, Path: slashPath}, nil
}

// Parse converts a URI or a plain filesystem path into an Identifier.
// Strings whose scheme is a single letter are treated as Windows drive paths.
func Parse(raw string) (Identifier, error) {
	return ParseRelative("", raw)
}

// ParseRelative behaves like Parse but resolves relative filesystem paths against baseDirectory.
func ParseRelative(baseDirectory string, raw string) (Identifier, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Identifier{}, errEmptyResource
	}
	if !hasScheme(trimmed) {
		return FromFilePath(utils.ResolvePath(baseDirectory, trimmed))
	}
	parsedURL, parseError := url.Parse(trimmed)
	if parseError != nil {
		return Identifier{}, fmt.Errorf("parse resource %q: %w", trimmed, parseError)
	}
	scheme := strings.ToLower(parsedURL.Scheme)
	path := parsedURL.Path
	if path == "" && parsedURL.Opaque != "" {
		unescapedOpaque, unescapeError := url.PathUnescape(parsedURL.Opaque)
		if unescapeError != nil {
			return Identifier{}, fmt.Errorf("parse resource %q: %w", trimmed, unescapeError)
		}
		path = unescapedOpaque
	}
	if scheme == SchemeFile {
		if path == "" {
			return Identifier{}, fmt.Errorf("parse resource %q: file resource without path", trimmed)
		}
		path = filepath.ToSlash(filepath.Clean(filepath.FromSlash(path)))
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
	}
	return Identifier{
		Scheme:    scheme,
		Authority: parsedURL.Host,
		Path:      path,
		Query:     parsedURL.RawQuery,
		Fragment:  parsedURL.Fragment,
	}, nil
}

func hasScheme(raw string) bool {
	colonIndex := strings.Index(raw, ":")
	if colonIndex < minimumSchemeLength {
		return false
	}
	for characterIndex, character := range raw[:colonIndex] {
		switch {
		case character >= 'a' && character <= 'z', character >= 'A' && character <= 'Z':
		case characterIndex > 0 && (character >= '0' && character <= '9' || character == '+' || character == '-' || character == '.'):
		default:
			return false
		}
	}
	return true
}

// IsFile reports whether the identifier names a local filesystem resource.
func (identifier Identifier) IsFile() bool {
	return identifier.Scheme == SchemeFile
}

// FilePath returns the native filesystem path for file identifiers and an empty string otherwise.
func (identifier Identifier) FilePath() string {
	if !identifier.IsFile() {
		return ""
	}
	nativePath := filepath.FromSlash(identifier.Path)
	if filepath.VolumeName(strings.TrimPrefix(nativePath, string(filepath.Separator))) != "" {
		nativePath = strings.TrimPrefix(nativePath, string(filepath.Separator))
	}
	return nativePath
}

// String renders the canonical form used for identity comparisons.
func (identifier Identifier) String() string {
	if identifier.Scheme == "" {
		return identifier.Path
	}
	var builder strings.Builder
	builder.WriteString(identifier.Scheme)
	builder.WriteString(":")
	if identifier.IsFile() || identifier.Authority != "" {
		builder.WriteString("//")
		builder.WriteString(identifier.Authority)
	}
	builder.WriteString((&url.URL{Path: identifier.Path}).EscapedPath())
	if identifier.Query != "" {
		builder.WriteString("?")
		builder.WriteString(identifier.Query)
	}
	if identifier.Fragment != "" {
		builder.WriteString("#")
		builder.WriteString((&url.URL{Fragment: identifier.Fragment}).EscapedFragment())
	}
	return builder.String()
}
