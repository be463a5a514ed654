package tabs

// SelectFromActive returns the active tab of the active group followed by every tab to its right.
// It returns nil when there is no active group, no active tab, or the active tab is not part of
// its group.
func SelectFromActive(query GroupQuery) []*Tab {
	if query == nil {
		return nil
	}
	group, hasGroup := query.ActiveGroup()
	if !hasGroup || group == nil || group.Active == nil {
		return nil
	}
	for tabIndex, tab := range group.Tabs {
		if tab == group.Active {
			selected := make([]*Tab, len(group.Tabs)-tabIndex)
			copy(selected, group.Tabs[tabIndex:])
			return selected
		}
	}
	return nil
}
