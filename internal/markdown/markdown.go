// Package markdown renders loaded documents as a single Markdown document of fenced code blocks.
package markdown

import (
	"strings"

	"github.com/temirov/tabcopy/internal/documents"
	"github.com/temirov/tabcopy/internal/resource"
)

const (
	beginFileHeadingPrefix = "### BEGIN FILE: "
	endFileHeadingPrefix   = "### END FILE: "
	codeFence              = "```"
	blockSeparator         = "\n"
)

var headingEscaper = strings.NewReplacer(
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
)

// PathLookup resolves workspace-relative paths.
type PathLookup interface {
	RelativePath(identifier resource.Identifier) (string, bool)
}

// DisplayPath returns the workspace-relative path of identifier when it lies in a workspace folder,
// the absolute filesystem path for other local files, and the identifier's string form otherwise.
func DisplayPath(identifier resource.Identifier, lookup PathLookup) string {
	if lookup != nil {
		if relativePath, found := lookup.RelativePath(identifier); found {
			return relativePath
		}
	}
	if identifier.IsFile() {
		return identifier.FilePath()
	}
	return identifier.String()
}

// EscapeHeading backslash-escapes the characters *, _ and ` so a path renders literally in a heading.
func EscapeHeading(path string) string {
	return headingEscaper.Replace(path)
}

// Render produces one BEGIN/END block per document in the given order. Document text is embedded verbatim.
func Render(loadedDocuments []documents.Document, lookup PathLookup) string {
	blocks := make([]string, 0, len(loadedDocuments))
	for _, document := range loadedDocuments {
		blocks = append(blocks, renderBlock(document, lookup))
	}
	return strings.Join(blocks, blockSeparator)
}

func renderBlock(document documents.Document, lookup PathLookup) string {
	heading := EscapeHeading(DisplayPath(document.Resource, lookup))
	var builder strings.Builder
	builder.Grow(len(document.Text) + 2*len(heading) + len(beginFileHeadingPrefix) + len(endFileHeadingPrefix) + len(document.LanguageID) + 16)
	builder.WriteString(beginFileHeadingPrefix)
	builder.WriteString(heading)
	builder.WriteString("\n\n")
	builder.WriteString(codeFence)
	builder.WriteString(strings.TrimSpace(document.LanguageID))
	builder.WriteString("\n")
	builder.WriteString(document.Text)
	builder.WriteString("\n")
	builder.WriteString(codeFence)
	builder.WriteString("\n")
	builder.WriteString(endFileHeadingPrefix)
	builder.WriteString(heading)
	builder.WriteString("\n")
	return builder.String()
}
