package resource_test

import (
	"path/filepath"
	"testing"

	"github.com/temirov/tabcopy/internal/resource"
)

func TestParseProducesCanonicalStrings(t *testing.T) {
	testCases := []struct {
		name           string
		raw            string
		expectedScheme string
		expectedString string
	}{
		{
			name:           "plain_absolute_path",
			raw:            "/home/user/project/main.go",
			expectedScheme: resource.SchemeFile,
			expectedString: "file:///home/user/project/main.go",
		},
		{
			name:           "file_uri",
			raw:            "file:///home/user/project/main.go",
			expectedScheme: resource.SchemeFile,
			expectedString: "file:///home/user/project/main.go",
		},
		{
			name:           "file_uri_with_escaped_space",
			raw:            "file:///home/user/my%20project/main.go",
			expectedScheme: resource.SchemeFile,
			expectedString: "file:///home/user/my%20project/main.go",
		},
		{
			name:           "plain_path_with_space",
			raw:            "/home/user/my project/main.go",
			expectedScheme: resource.SchemeFile,
			expectedString: "file:///home/user/my%20project/main.go",
		},
		{
			name:           "untitled_buffer",
			raw:            "untitled:Untitled-1",
			expectedScheme: resource.SchemeUntitled,
			expectedString: "untitled:Untitled-1",
		},
		{
			name:           "scheme_with_query",
			raw:            "git:/home/user/project/main.go?HEAD",
			expectedScheme: "git",
			expectedString: "git:/home/user/project/main.go?HEAD",
		},
		{
			name:           "uppercase_scheme_is_normalized",
			raw:            "UNTITLED:Untitled-2",
			expectedScheme: resource.SchemeUntitled,
			expectedString: "untitled:Untitled-2",
		},
		{
			name:           "untitled_with_escaped_space",
			raw:            "untitled:My%20File",
			expectedScheme: resource.SchemeUntitled,
			expectedString: "untitled:My%20File",
		},
		{
			name:           "untitled_with_raw_space",
			raw:            "untitled:My File",
			expectedScheme: resource.SchemeUntitled,
			expectedString: "untitled:My%20File",
		},
		{
			name:           "fragment_keeps_slashes",
			raw:            "untitled:a#frag/x",
			expectedScheme: resource.SchemeUntitled,
			expectedString: "untitled:a#frag/x",
		},
		{
			name:           "uncleaned_path",
			raw:            "/home/user/project/../project/./main.go",
			expectedScheme: resource.SchemeFile,
			expectedString: "file:///home/user/project/main.go",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			identifier, parseError := resource.Parse(testCase.raw)
			if parseError != nil {
				t.Fatalf("Parse(%q) error: %v", testCase.raw, parseError)
			}
			if identifier.Scheme != testCase.expectedScheme {
				t.Fatalf("expected scheme %q, got %q", testCase.expectedScheme, identifier.Scheme)
			}
			if identifier.String() != testCase.expectedString {
				t.Fatalf("expected %q, got %q", testCase.expectedString, identifier.String())
			}
			reparsed, reparseError := resource.Parse(identifier.String())
			if reparseError != nil {
				t.Fatalf("Parse(%q) error: %v", identifier.String(), reparseError)
			}
			if reparsed.String() != identifier.String() {
				t.Fatalf("canonical form is not stable: %q became %q", identifier.String(), reparsed.String())
			}
		})
	}
}

func TestParseRejectsMalformedEscapes(t *testing.T) {
	if _, parseError := resource.Parse("untitled:bad%zzname"); parseError == nil {
		t.Fatalf("expected error for malformed escape")
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   "} {
		if _, parseError := resource.Parse(raw); parseError == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestPathAndFileURIShareIdentity(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "notes.md")
	fromPath, pathError := resource.FromFilePath(filePath)
	if pathError != nil {
		t.Fatalf("FromFilePath error: %v", pathError)
	}
	fromURI, uriError := resource.Parse(fromPath.String())
	if uriError != nil {
		t.Fatalf("Parse error: %v", uriError)
	}
	if fromPath.String() != fromURI.String() {
		t.Fatalf("expected identical identity, got %q and %q", fromPath.String(), fromURI.String())
	}
	if fromURI.FilePath() != filePath {
		t.Fatalf("expected file path %q, got %q", filePath, fromURI.FilePath())
	}
}

func TestParseRelativeResolvesAgainstBase(t *testing.T) {
	baseDirectory := t.TempDir()
	identifier, parseError := resource.ParseRelative(baseDirectory, "src/app.ts")
	if parseError != nil {
		t.Fatalf("ParseRelative error: %v", parseError)
	}
	expectedPath := filepath.Join(baseDirectory, "src", "app.ts")
	if identifier.FilePath() != expectedPath {
		t.Fatalf("expected %q, got %q", expectedPath, identifier.FilePath())
	}

	untitled, untitledError := resource.ParseRelative(baseDirectory, "untitled:Untitled-1")
	if untitledError != nil {
		t.Fatalf("ParseRelative error: %v", untitledError)
	}
	if untitled.IsFile() || untitled.FilePath() != "" {
		t.Fatalf("expected non-file identifier, got %+v", untitled)
	}
}
