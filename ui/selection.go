package ui

// Selection tracks the selected elements. It is the only writer of
// Element.isSelected, so membership and the flag always agree.
type Selection struct {
	registry *Registry
	members  map[*Element]struct{}

	// Multiselecting switches clicks from replacing the selection to
	// toggling membership.
	Multiselecting bool
}

func NewSelection(registry *Registry) *Selection {
	return &Selection{
		registry: registry,
		members:  make(map[*Element]struct{}),
	}
}

func selectable(e *Element) bool {
	return e != nil && e.Selectable && e.Interactable
}

// Select adds e to the selection, first clearing everything else unless
// additive is set.
func (s *Selection) Select(e *Element, additive bool) {
	s.selectWith(e, additive, SelectEvent{})
}

func (s *Selection) selectWith(e *Element, additive bool, ev SelectEvent) {
	if !selectable(e) {
		return
	}
	if !additive {
		for m := range s.members {
			if m != e {
				s.drop(m, ev)
			}
		}
	}
	s.members[e] = struct{}{}
	e.setSelected(true, ev)
}

// Deselect removes e from the selection.
func (s *Selection) Deselect(e *Element) {
	s.deselectWith(e, SelectEvent{})
}

func (s *Selection) deselectWith(e *Element, ev SelectEvent) {
	if !selectable(e) || !e.isSelected {
		return
	}
	s.drop(e, ev)
}

// drop removes e regardless of its flags. Elements that became disabled
// or non-interactable while selected still have to leave cleanly.
func (s *Selection) drop(e *Element, ev SelectEvent) {
	delete(s.members, e)
	e.setSelected(false, ev)
}

// Clear empties the selection.
func (s *Selection) Clear() {
	for m := range s.members {
		s.drop(m, SelectEvent{})
	}
}

// handleClick applies the click rules: a right click on a selected element
// extends the selection, multiselect toggles, anything else replaces.
func (s *Selection) handleClick(e *Element, button MouseButton, pos Vec) {
	ev := SelectEvent{Button: button, Position: pos}
	switch {
	case button == ButtonRight && e.isSelected:
		s.selectWith(e, true, ev)
	case s.Multiselecting && e.isSelected:
		s.deselectWith(e, ev)
	case s.Multiselecting:
		s.selectWith(e, true, ev)
	default:
		s.selectWith(e, false, ev)
	}
}

// SelectAll replaces the selection with every live element that opts in.
func (s *Selection) SelectAll() {
	s.Clear()
	for _, e := range s.registry.Elements() {
		if e.SelectInSelectAll {
			s.Select(e, true)
		}
	}
}

// ToggleSelectAll selects all when nothing is selected, otherwise clears.
func (s *Selection) ToggleSelectAll() {
	if len(s.members) == 0 {
		s.SelectAll()
		return
	}
	s.Clear()
}

func (s *Selection) Contains(e *Element) bool {
	_, ok := s.members[e]
	return ok
}

func (s *Selection) Len() int {
	return len(s.members)
}

// Elements returns the selected elements in no particular order.
func (s *Selection) Elements() []*Element {
	out := make([]*Element, 0, len(s.members))
	for m := range s.members {
		out = append(out, m)
	}
	return out
}
