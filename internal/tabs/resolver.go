package tabs

import (
	"github.com/temirov/tabcopy/internal/resource"
)

// ResolveResources maps each tab to the resource it shows and removes repeats.
// Diff tabs resolve to their modified side and tabs without text content are dropped.
// The first occurrence of every identifier keeps its position.
func ResolveResources(selectedTabs []*Tab) []resource.Identifier {
	encounteredResources := make(map[string]struct{}, len(selectedTabs))
	resolved := make([]resource.Identifier, 0, len(selectedTabs))
	for _, tab := range selectedTabs {
		identifier, ok := resourceForTab(tab)
		if !ok {
			continue
		}
		key := identifier.String()
		if _, exists := encounteredResources[key]; exists {
			continue
		}
		encounteredResources[key] = struct{}{}
		resolved = append(resolved, identifier)
	}
	return resolved
}

func resourceForTab(tab *Tab) (resource.Identifier, bool) {
	if tab == nil {
		return resource.Identifier{}, false
	}
	switch payload := tab.Payload.(type) {
	case TextPayload:
		return payload.Resource, true
	case DiffPayload:
		return payload.Modified, true
	case OtherPayload:
		return resource.Identifier{}, false
	case nil:
		return resource.Identifier{}, false
	default:
		return resource.Identifier{}, false
	}
}
