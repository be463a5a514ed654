package documents

import (
	"path/filepath"
	"strings"
)

var fileNameLanguages = map[string]string{
	"dockerfile":     "dockerfile",
	"makefile":       "makefile",
	"gnumakefile":    "makefile",
	"go.mod":         "go.mod",
	"go.sum":         "go.sum",
	"go.work":        "go.work",
	"cmakelists.txt": "cmake",
	".gitignore":     "ignore",
	".dockerignore":  "ignore",
	".bashrc":        "shellscript",
	".zshrc":         "shellscript",
}

var extensionLanguages = map[string]string{
	".bat":        "bat",
	".c":          "c",
	".h":          "c",
	".cc":         "cpp",
	".cpp":        "cpp",
	".cxx":        "cpp",
	".hpp":        "cpp",
	".cs":         "csharp",
	".css":        "css",
	".scss":       "scss",
	".less":       "less",
	".dart":       "dart",
	".diff":       "diff",
	".patch":      "diff",
	".ex":         "elixir",
	".exs":        "elixir",
	".fs":         "fsharp",
	".go":         "go",
	".graphql":    "graphql",
	".gql":        "graphql",
	".groovy":     "groovy",
	".gradle":     "groovy",
	".hs":         "haskell",
	".html":       "html",
	".htm":        "html",
	".ini":        "ini",
	".java":       "java",
	".js":         "javascript",
	".mjs":        "javascript",
	".cjs":        "javascript",
	".jsx":        "javascriptreact",
	".json":       "json",
	".jsonc":      "jsonc",
	".jl":         "julia",
	".kt":         "kotlin",
	".kts":        "kotlin",
	".tex":        "latex",
	".lua":        "lua",
	".md":         "markdown",
	".markdown":   "markdown",
	".m":          "objective-c",
	".mm":         "objective-cpp",
	".pl":         "perl",
	".pm":         "perl",
	".php":        "php",
	".ps1":        "powershell",
	".proto":      "proto3",
	".py":         "python",
	".r":          "r",
	".rb":         "ruby",
	".rs":         "rust",
	".scala":      "scala",
	".sh":         "shellscript",
	".bash":       "shellscript",
	".zsh":        "shellscript",
	".sql":        "sql",
	".svelte":     "svelte",
	".swift":      "swift",
	".tf":         "terraform",
	".toml":       "toml",
	".ts":         "typescript",
	".mts":        "typescript",
	".cts":        "typescript",
	".tsx":        "typescriptreact",
	".txt":        "plaintext",
	".vue":        "vue",
	".xml":        "xml",
	".svg":        "xml",
	".yaml":       "yaml",
	".yml":        "yaml",
	".zig":        "zig",
	".dockerfile": "dockerfile",
}

// DetectLanguage returns the editor language identifier for a file path, or an empty string
// when the file name and extension are not recognized.
func DetectLanguage(filePath string) string {
	baseName := strings.ToLower(filepath.Base(filePath))
	if languageID, known := fileNameLanguages[baseName]; known {
		return languageID
	}
	if strings.HasPrefix(baseName, "dockerfile.") {
		return "dockerfile"
	}
	return extensionLanguages[strings.ToLower(filepath.Ext(baseName))]
}
