package ui

import "math"

// Draggable moves its element by the pointer delta while the element is
// held with the left button.
type Draggable struct {
	Element *Element

	dragging  bool
	dragBegin []func()
	dragStart []func()
	dragStop  []func()
}

func NewDraggable(e *Element) *Draggable {
	return &Draggable{Element: e}
}

// OnDragStart registers fn to run on every frame the element moves.
func (d *Draggable) OnDragStart(fn func()) { d.dragStart = append(d.dragStart, fn) }

// OnDragBegin registers fn to run once, on the first moved frame of a hold.
func (d *Draggable) OnDragBegin(fn func()) { d.dragBegin = append(d.dragBegin, fn) }

// OnDragStop registers fn to run when a hold that moved the element ends.
func (d *Draggable) OnDragStop(fn func()) { d.dragStop = append(d.dragStop, fn) }

// Dragging reports whether the element is mid-drag.
func (d *Draggable) Dragging() bool { return d.dragging }

// Update must run after Controller.Update for the same frame. It reports
// whether the element moved.
func (d *Draggable) Update(in Input) bool {
	e := d.Element
	if e.isBeingHeld && in.Held == ButtonLeft {
		e.Position = e.Position.Add(in.Delta(e.ScreenSpace))
		if !d.dragging {
			d.dragging = true
			for _, fn := range d.dragBegin {
				fn()
			}
		}
		for _, fn := range d.dragStart {
			fn()
		}
		return true
	}

	if d.dragging && !e.isBeingHeld {
		d.dragging = false
		for _, fn := range d.dragStop {
			fn()
		}
	}
	return false
}

// OverlayDepth sorts screen-space overlays above anything a
// DepthAllocator will reach.
const OverlayDepth = math.MinInt32

// DepthAllocator hands out ever-lower depths so the most recently raised
// element sorts on top.
type DepthAllocator struct {
	next int
}

// Next returns a depth below every depth returned before.
func (a *DepthAllocator) Next() int {
	a.next--
	return a.next
}

// Raise puts e above everything raised before it. Elements that use e as
// their depth container move with it.
func (a *DepthAllocator) Raise(e *Element) {
	e.SetDepth(a.Next())
}
