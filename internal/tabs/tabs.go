// Package tabs models the editor's tab groups and selects and resolves the tabs to copy.
package tabs

import (
	"github.com/temirov/tabcopy/internal/resource"
)

// Payload describes what a tab shows. The set of implementations is closed:
// TextPayload, DiffPayload and OtherPayload.
type Payload interface {
	isPayload()
}

// TextPayload is a tab showing a single text document.
type TextPayload struct {
	Resource resource.Identifier
}

// DiffPayload is a comparison tab. Modified is the side holding the current state.
type DiffPayload struct {
	Original resource.Identifier
	Modified resource.Identifier
}

// OtherPayload is a tab that is not backed by plain text, such as a webview or notebook.
type OtherPayload struct {
	Kind string
}

func (TextPayload) isPayload()  {}
func (DiffPayload) isPayload()  {}
func (OtherPayload) isPayload() {}

// Tab is a read-only handle to an open editor tab.
type Tab struct {
	Label   string
	Payload Payload
}

// Group is an ordered sequence of tabs with an optional active tab.
type Group struct {
	Tabs   []*Tab
	Active *Tab
}

// GroupQuery exposes the host's active tab group.
type GroupQuery interface {
	ActiveGroup() (*Group, bool)
}
