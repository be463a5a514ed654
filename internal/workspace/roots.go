// Package workspace maps resources to paths relative to the workspace folders.
package workspace

import (
	"path/filepath"
	"strings"

	"github.com/temirov/tabcopy/internal/resource"
	"github.com/temirov/tabcopy/internal/utils"
)

const parentDirectoryPrefix = ".."

// Roots is an ordered set of workspace folders.
type Roots struct {
	folders []string
}

// NewRoots builds Roots from folder paths. Relative folders are resolved against the working
// directory; blank and repeated folders are dropped.
func NewRoots(folders []string) Roots {
	resolvedFolders := make([]string, 0, len(folders))
	for _, folder := range utils.DeduplicateStrings(folders) {
		absoluteFolder, absoluteError := filepath.Abs(folder)
		if absoluteError != nil {
			continue
		}
		resolvedFolders = append(resolvedFolders, filepath.Clean(absoluteFolder))
	}
	return Roots{folders: utils.DeduplicateStrings(resolvedFolders)}
}

// Folders returns the workspace folders in order.
func (roots Roots) Folders() []string {
	return append([]string(nil), roots.folders...)
}

// RelativePath returns the forward-slash path of identifier relative to the first folder containing it.
// It reports false for non-file resources, for resources outside every folder and for a folder itself.
func (roots Roots) RelativePath(identifier resource.Identifier) (string, bool) {
	if !identifier.IsFile() {
		return "", false
	}
	filePath := filepath.Clean(identifier.FilePath())
	for _, folder := range roots.folders {
		relativePath, relativeError := filepath.Rel(folder, filePath)
		if relativeError != nil || relativePath == "." {
			continue
		}
		slashPath := filepath.ToSlash(relativePath)
		if slashPath == parentDirectoryPrefix || strings.HasPrefix(slashPath, parentDirectoryPrefix+"/") {
			continue
		}
		return slashPath, true
	}
	return "", false
}
