package ui

import (
	"cmp"
	"log"
	"slices"
)

// Registry owns the dispatch-ordered list of live elements. Register and
// Deregister only queue changes; flush applies them at the frame boundary
// so callbacks may add or remove elements while the list is being walked.
type Registry struct {
	live          []*Element
	pendingAdd    []*Element
	pendingRemove []*Element
	dirty         bool
	// registrations counts elements joining the live list; it orders
	// equal depths.
	registrations uint64
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register queues e to join the live list at the next flush.
func (r *Registry) Register(e *Element) {
	if e == nil {
		log.Printf("ui: register of nil element ignored")
		return
	}
	if i := slices.Index(r.pendingRemove, e); i >= 0 {
		r.pendingRemove = slices.Delete(r.pendingRemove, i, i+1)
	}
	e.onDepthChanged = r.markDirty
	r.pendingAdd = append(r.pendingAdd, e)
	r.dirty = true
}

// Deregister queues e for removal and reports whether it was queued.
// Removing an element twice, or one that was never registered, is a no-op.
func (r *Registry) Deregister(e *Element) bool {
	if e == nil {
		log.Printf("ui: deregister of nil element ignored")
		return false
	}
	if slices.Contains(r.pendingRemove, e) {
		return true
	}
	if !slices.Contains(r.live, e) && !slices.Contains(r.pendingAdd, e) {
		log.Printf("ui: deregister of unregistered element %d ignored", e.id)
		return false
	}
	r.pendingRemove = append(r.pendingRemove, e)
	r.dirty = true
	return true
}

func (r *Registry) markDirty() {
	r.dirty = true
}

// Dirty reports whether a flush would change the live list or its order.
func (r *Registry) Dirty() bool {
	return r.dirty
}

// Elements returns the live list in dispatch order, topmost first. The
// slice must not be modified.
func (r *Registry) Elements() []*Element {
	return r.live
}

// Len returns the number of live elements.
func (r *Registry) Len() int {
	return len(r.live)
}

// flush applies pending removals, then pending additions, then rebuilds
// the dispatch order. removed holds every element that was deregistered,
// including ones that never reached the live list, so the caller can fix
// up focus and selection.
func (r *Registry) flush() (removed, added []*Element) {
	if !r.dirty {
		return nil, nil
	}
	r.dirty = false

	for _, e := range r.pendingRemove {
		if i := slices.Index(r.pendingAdd, e); i >= 0 {
			r.pendingAdd = slices.Delete(r.pendingAdd, i, i+1)
		}
		if i := slices.Index(r.live, e); i >= 0 {
			r.live = slices.Delete(r.live, i, i+1)
		}
		e.onDepthChanged = nil
		removed = append(removed, e)
	}
	r.pendingRemove = r.pendingRemove[:0]

	for _, e := range r.pendingAdd {
		if slices.Contains(r.live, e) {
			continue
		}
		e.resetInteraction()
		r.registrations++
		e.registration = r.registrations
		r.live = append(r.live, e)
		added = append(added, e)
	}
	r.pendingAdd = r.pendingAdd[:0]

	r.live = depthOrder(r.live)
	return removed, added
}

// depthOrder sorts elements for dispatch. Top-level elements are taken by
// ascending depth; each is preceded by the elements that name it as their
// depth container, themselves by ascending depth. Elements whose container
// is not in the list, or that sit on a container cycle, count as
// top-level. Equal depths keep the order in which the elements joined the
// live list.
func depthOrder(elements []*Element) []*Element {
	byID := make(map[ElementID]*Element, len(elements))
	for _, e := range elements {
		byID[e.id] = e
	}

	children := make(map[ElementID][]*Element)
	var roots []*Element
	for _, e := range elements {
		if c := e.depthContainer; c != 0 && c != e.id && byID[c] != nil {
			children[c] = append(children[c], e)
		} else {
			roots = append(roots, e)
		}
	}

	order := make([]*Element, 0, len(elements))
	visited := make(map[ElementID]bool, len(elements))
	var emit func(e *Element)
	emit = func(e *Element) {
		if visited[e.id] {
			return
		}
		visited[e.id] = true
		kids := children[e.id]
		sortByDepth(kids)
		for _, k := range kids {
			emit(k)
		}
		order = append(order, e)
	}

	sortByDepth(roots)
	for _, e := range roots {
		emit(e)
	}

	if len(order) < len(elements) {
		var stranded []*Element
		for _, e := range elements {
			if !visited[e.id] {
				stranded = append(stranded, e)
			}
		}
		sortByDepth(stranded)
		for _, e := range stranded {
			emit(e)
		}
	}
	return order
}

func sortByDepth(elements []*Element) {
	slices.SortFunc(elements, func(a, b *Element) int {
		return cmp.Or(
			cmp.Compare(a.depth, b.depth),
			cmp.Compare(a.registration, b.registration),
		)
	})
}
