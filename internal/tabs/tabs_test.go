package tabs

import (
	"testing"

	"github.com/temirov/tabcopy/internal/resource"
)

type stubGroupQuery struct {
	group    *Group
	hasGroup bool
}

func (query stubGroupQuery) ActiveGroup() (*Group, bool) {
	return query.group, query.hasGroup
}

func mustIdentifier(t *testing.T, raw string) resource.Identifier {
	t.Helper()
	identifier, parseError := resource.Parse(raw)
	if parseError != nil {
		t.Fatalf("parse %q: %v", raw, parseError)
	}
	return identifier
}

func textTab(t *testing.T, label string, raw string) *Tab {
	t.Helper()
	return &Tab{Label: label, Payload: TextPayload{Resource: mustIdentifier(t, raw)}}
}

func diffTab(t *testing.T, label string, original string, modified string) *Tab {
	t.Helper()
	return &Tab{Label: label, Payload: DiffPayload{
		Original: mustIdentifier(t, original),
		Modified: mustIdentifier(t, modified),
	}}
}

func labels(selected []*Tab) []string {
	result := make([]string, 0, len(selected))
	for _, tab := range selected {
		result = append(result, tab.Label)
	}
	return result
}

func TestSelectFromActive(t *testing.T) {
	first := textTab(t, "A", "/work/a.go")
	second := textTab(t, "B", "/work/b.go")
	third := textTab(t, "C", "/work/c.go")
	detached := textTab(t, "X", "/work/x.go")
	tabSequence := []*Tab{first, second, third}

	testCases := []struct {
		name     string
		query    GroupQuery
		expected []string
	}{
		{
			name:     "nil_query",
			query:    nil,
			expected: []string{},
		},
		{
			name:     "no_active_group",
			query:    stubGroupQuery{},
			expected: []string{},
		},
		{
			name:     "no_active_tab",
			query:    stubGroupQuery{group: &Group{Tabs: tabSequence}, hasGroup: true},
			expected: []string{},
		},
		{
			name:     "active_tab_outside_group",
			query:    stubGroupQuery{group: &Group{Tabs: tabSequence, Active: detached}, hasGroup: true},
			expected: []string{},
		},
		{
			name:     "active_first",
			query:    stubGroupQuery{group: &Group{Tabs: tabSequence, Active: first}, hasGroup: true},
			expected: []string{"A", "B", "C"},
		},
		{
			name:     "active_middle",
			query:    stubGroupQuery{group: &Group{Tabs: tabSequence, Active: second}, hasGroup: true},
			expected: []string{"B", "C"},
		},
		{
			name:     "active_last",
			query:    stubGroupQuery{group: &Group{Tabs: tabSequence, Active: third}, hasGroup: true},
			expected: []string{"C"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			selected := labels(SelectFromActive(testCase.query))
			if len(selected) != len(testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, selected)
			}
			for index := range selected {
				if selected[index] != testCase.expected[index] {
					t.Fatalf("expected %v, got %v", testCase.expected, selected)
				}
			}
		})
	}
}

func TestSelectFromActiveDoesNotAliasGroup(t *testing.T) {
	first := textTab(t, "A", "/work/a.go")
	second := textTab(t, "B", "/work/b.go")
	group := &Group{Tabs: []*Tab{first, second}, Active: first}

	selected := SelectFromActive(stubGroupQuery{group: group, hasGroup: true})
	selected[0] = nil

	if group.Tabs[0] != first {
		t.Fatalf("selection must not modify the group's tab sequence")
	}
}

func TestResolveResources(t *testing.T) {
	testCases := []struct {
		name     string
		tabs     []*Tab
		expected []string
	}{
		{
			name:     "empty_selection",
			tabs:     nil,
			expected: []string{},
		},
		{
			name: "diff_resolves_to_modified_side",
			tabs: []*Tab{
				diffTab(t, "C", "git:/work/c.go?HEAD", "/work/c.go"),
			},
			expected: []string{"file:///work/c.go"},
		},
		{
			name: "unsupported_tabs_dropped",
			tabs: []*Tab{
				{Label: "Settings", Payload: OtherPayload{Kind: "webview"}},
				{Label: "Empty"},
				nil,
				textTab(t, "A", "/work/a.go"),
			},
			expected: []string{"file:///work/a.go"},
		},
		{
			name: "duplicates_keep_first_position",
			tabs: []*Tab{
				textTab(t, "B", "/work/b.go"),
				textTab(t, "A", "/work/a.go"),
				diffTab(t, "B diff", "git:/work/b.go?HEAD", "/work/b.go"),
				textTab(t, "A again", "file:///work/a.go"),
				textTab(t, "U", "untitled:Untitled-1"),
			},
			expected: []string{"file:///work/b.go", "file:///work/a.go", "untitled:Untitled-1"},
		},
		{
			name: "mixed_group",
			tabs: []*Tab{
				textTab(t, "A", "/work/a.go"),
				textTab(t, "B", "/work/b.go"),
				diffTab(t, "C", "/work/c0.go", "/work/c1.go"),
				{Label: "D", Payload: OtherPayload{Kind: "notebook"}},
			},
			expected: []string{"file:///work/a.go", "file:///work/b.go", "file:///work/c1.go"},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resolved := ResolveResources(testCase.tabs)
			if len(resolved) != len(testCase.expected) {
				t.Fatalf("expected %v, got %v", testCase.expected, resolved)
			}
			for index, identifier := range resolved {
				if identifier.String() != testCase.expected[index] {
					t.Fatalf("position %d: expected %s, got %s", index, testCase.expected[index], identifier.String())
				}
			}
		})
	}
}
