// Package session reads the editor state snapshot handed to tabcopy by the editor integration.
package session

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/temirov/tabcopy/internal/documents"
	"github.com/temirov/tabcopy/internal/resource"
	"github.com/temirov/tabcopy/internal/tabs"
	"github.com/temirov/tabcopy/internal/utils"
)

const noSelection = -1

// ErrInvalidTab reports a tab entry that does not describe exactly one payload.
var ErrInvalidTab = errors.New("invalid tab")

type snapshotFile struct {
	Workspace   workspaceSection  `yaml:"workspace"`
	ActiveGroup *int              `yaml:"activeGroup"`
	Groups      []groupSection    `yaml:"groups"`
	Documents   []documentSection `yaml:"documents"`
}

type workspaceSection struct {
	Roots []string `yaml:"roots"`
}

type groupSection struct {
	Active *int         `yaml:"active"`
	Tabs   []tabSection `yaml:"tabs"`
}

type tabSection struct {
	Label string       `yaml:"label"`
	Text  string       `yaml:"text"`
	Diff  *diffSection `yaml:"diff"`
	Kind  string       `yaml:"kind"`
}

type diffSection struct {
	Original string `yaml:"original"`
	Modified string `yaml:"modified"`
}

type documentSection struct {
	URI      string `yaml:"uri"`
	Language string `yaml:"language"`
	Text     string `yaml:"text"`
}

// Snapshot is a decoded, read-only view of the editor's tab groups, open documents and workspace folders.
type Snapshot struct {
	groups           []*tabs.Group
	activeGroupIndex int
	openDocuments    map[string]documents.Document
	workspaceRoots   []string
}

// Load reads a snapshot from path. Relative resource paths are resolved against the snapshot's directory.
//
// #nosec G304
func Load(path string) (*Snapshot, error) {
	fileHandle, openError := os.Open(path)
	if openError != nil {
		return nil, fmt.Errorf("open session snapshot %s: %w", path, openError)
	}
	defer fileHandle.Close()
	absolutePath, absoluteError := filepath.Abs(path)
	if absoluteError != nil {
		return nil, fmt.Errorf("resolve session snapshot %s: %w", path, absoluteError)
	}
	snapshot, decodeError := Decode(fileHandle, filepath.Dir(absolutePath))
	if decodeError != nil {
		return nil, fmt.Errorf("session snapshot %s: %w", path, decodeError)
	}
	return snapshot, nil
}

// Decode parses a YAML or JSON snapshot. Relative resource paths are resolved against baseDirectory.
func Decode(reader io.Reader, baseDirectory string) (*Snapshot, error) {
	var decoded snapshotFile
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if decodeError := decoder.Decode(&decoded); decodeError != nil && !errors.Is(decodeError, io.EOF) {
		return nil, fmt.Errorf("decode session snapshot: %w", decodeError)
	}

	snapshot := &Snapshot{
		activeGroupIndex: indexOrNone(decoded.ActiveGroup, len(decoded.Groups)),
		openDocuments:    make(map[string]documents.Document, len(decoded.Documents)),
	}

	for _, root := range decoded.Workspace.Roots {
		snapshot.workspaceRoots = append(snapshot.workspaceRoots, utils.ResolvePath(baseDirectory, root))
	}

	for groupIndex, group := range decoded.Groups {
		builtGroup := &tabs.Group{Tabs: make([]*tabs.Tab, 0, len(group.Tabs))}
		for tabIndex, tab := range group.Tabs {
			payload, payloadError := buildPayload(tab, baseDirectory)
			if payloadError != nil {
				return nil, fmt.Errorf("group %d tab %d (%s): %w", groupIndex, tabIndex, tab.Label, payloadError)
			}
			builtGroup.Tabs = append(builtGroup.Tabs, &tabs.Tab{Label: tab.Label, Payload: payload})
		}
		if activeTabIndex := indexOrNone(group.Active, len(builtGroup.Tabs)); activeTabIndex != noSelection {
			builtGroup.Active = builtGroup.Tabs[activeTabIndex]
		}
		snapshot.groups = append(snapshot.groups, builtGroup)
	}

	for documentIndex, document := range decoded.Documents {
		identifier, parseError := resource.ParseRelative(baseDirectory, document.URI)
		if parseError != nil {
			return nil, fmt.Errorf("document %d: %w", documentIndex, parseError)
		}
		snapshot.openDocuments[identifier.String()] = documents.Document{
			Resource:   identifier,
			Text:       document.Text,
			LanguageID: document.Language,
		}
	}

	return snapshot, nil
}

func buildPayload(tab tabSection, baseDirectory string) (tabs.Payload, error) {
	switch {
	case tab.Text != "" && tab.Diff != nil:
		return nil, fmt.Errorf("%w: both text and diff are set", ErrInvalidTab)
	case tab.Text != "":
		identifier, parseError := resource.ParseRelative(baseDirectory, tab.Text)
		if parseError != nil {
			return nil, parseError
		}
		return tabs.TextPayload{Resource: identifier}, nil
	case tab.Diff != nil:
		if tab.Diff.Modified == "" {
			return nil, fmt.Errorf("%w: diff without modified side", ErrInvalidTab)
		}
		modified, modifiedError := resource.ParseRelative(baseDirectory, tab.Diff.Modified)
		if modifiedError != nil {
			return nil, modifiedError
		}
		var original resource.Identifier
		if tab.Diff.Original != "" {
			parsedOriginal, originalError := resource.ParseRelative(baseDirectory, tab.Diff.Original)
			if originalError != nil {
				return nil, originalError
			}
			original = parsedOriginal
		}
		return tabs.DiffPayload{Original: original, Modified: modified}, nil
	default:
		return tabs.OtherPayload{Kind: tab.Kind}, nil
	}
}

// indexOrNone returns index when it addresses one of length elements and noSelection otherwise.
func indexOrNone(index *int, length int) int {
	if index == nil || *index < 0 || *index >= length {
		return noSelection
	}
	return *index
}

// ActiveGroup returns the group the editor reported as active.
func (snapshot *Snapshot) ActiveGroup() (*tabs.Group, bool) {
	if snapshot == nil || snapshot.activeGroupIndex == noSelection {
		return nil, false
	}
	return snapshot.groups[snapshot.activeGroupIndex], true
}

// FindOpenDocument returns the in-memory version of identifier when the editor has it open.
func (snapshot *Snapshot) FindOpenDocument(identifier resource.Identifier) (documents.Document, bool) {
	if snapshot == nil {
		return documents.Document{}, false
	}
	document, found := snapshot.openDocuments[identifier.String()]
	return document, found
}

// WorkspaceRoots returns the workspace folders listed in the snapshot.
func (snapshot *Snapshot) WorkspaceRoots() []string {
	if snapshot == nil {
		return nil
	}
	return append([]string(nil), snapshot.workspaceRoots...)
}

var (
	_ tabs.GroupQuery         = (*Snapshot)(nil)
	_ documents.OpenDocuments = (*Snapshot)(nil)
)
