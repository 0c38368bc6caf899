package ui

import (
	"image/color"
	"sync/atomic"
)

// ElementID identifies an element for depth-container lookups. It is
// assigned once at creation and never reused.
type ElementID uint64

var lastElementID atomic.Uint64

// Palette holds the colours an element can be drawn in.
type Palette struct {
	Normal   color.Color
	Hover    color.Color
	Active   color.Color
	Disabled color.Color
	Selected color.Color
}

// MouseEvent is passed to mouse-down, mouse-up and double-click observers.
// Setting Propagated in a mouse-down observer cancels the default
// behaviour: no selection change, no focus, no hold.
type MouseEvent struct {
	Button     MouseButton
	Position   Vec
	Propagated bool
}

// SelectEvent is passed to select and deselect observers. Button is
// ButtonNone when the change was not caused by a click.
type SelectEvent struct {
	Button   MouseButton
	Position Vec
}

// Element is one interactive rectangle. Geometry and flags are owned by
// the widget that created it; runtime state is written only by the
// Controller and the Selection.
type Element struct {
	Position Vec
	Size     Vec
	// ScreenSpace selects which cursor stream the element is tested
	// against. World-space elements move with the camera.
	ScreenSpace bool

	Colors Palette
	Label  string
	Hidden bool

	Selectable             bool
	Disabled               bool
	Interactable           bool
	SelectInSelectAll      bool
	DoubleClickMaxDuration float64

	id             ElementID
	depth          int
	depthContainer ElementID
	onDepthChanged func()
	registration   uint64

	isUnderMouse  bool
	isActive      bool
	isBeingHeld   bool
	isSelected    bool
	computedColor color.Color

	lastClickTime float64
	hasLastClick  bool

	mouseDown   []func(*MouseEvent)
	mouseUp     []func(*MouseEvent)
	doubleClick []func(*MouseEvent)
	selected    []func(SelectEvent)
	deselected  []func(SelectEvent)
}

// NewElement creates an interactable element at the given bounds.
func NewElement(x, y, width, height float64, colors Palette) *Element {
	e := &Element{
		Position:               Vec{X: x, Y: y},
		Size:                   Vec{X: width, Y: height},
		Colors:                 colors,
		Interactable:           true,
		DoubleClickMaxDuration: 0.3,
		id:                     ElementID(lastElementID.Add(1)),
	}
	e.recomputeColor()
	return e
}

func (e *Element) ID() ElementID { return e.id }

func (e *Element) Depth() int { return e.depth }

// SetDepth changes the element's z-order. Lower depth is on top. The
// registry re-sorts before the next dispatch.
func (e *Element) SetDepth(d int) {
	if e.depth == d {
		return
	}
	e.depth = d
	e.depthChanged()
}

// SetDepthContainer groups e's z-order directly above container. The
// relation is a lookup by ID only; nil clears it.
func (e *Element) SetDepthContainer(container *Element) {
	var id ElementID
	if container != nil {
		id = container.id
	}
	if e.depthContainer == id {
		return
	}
	e.depthContainer = id
	e.depthChanged()
}

// DepthContainer returns the ID of the depth container, or 0.
func (e *Element) DepthContainer() ElementID { return e.depthContainer }

func (e *Element) depthChanged() {
	if e.onDepthChanged != nil {
		e.onDepthChanged()
	}
}

func (e *Element) Bounds() Rectangle {
	return Rectangle{X: e.Position.X, Y: e.Position.Y, Width: e.Size.X, Height: e.Size.Y}
}

// ContainsPoint reports whether p lies inside the element, edges included.
func (e *Element) ContainsPoint(p Vec) bool {
	return e.Bounds().Contains(p)
}

func (e *Element) IsUnderMouse() bool         { return e.isUnderMouse }
func (e *Element) IsActive() bool             { return e.isActive }
func (e *Element) IsBeingHeld() bool          { return e.isBeingHeld }
func (e *Element) IsSelected() bool           { return e.isSelected }
func (e *Element) ComputedColor() color.Color { return e.computedColor }

// recomputeColor picks the colour by priority: disabled, selected,
// active or held, hovered, normal.
func (e *Element) recomputeColor() {
	switch {
	case e.Disabled:
		e.computedColor = e.Colors.Disabled
	case e.isSelected:
		e.computedColor = e.Colors.Selected
	case e.isActive || e.isBeingHeld:
		e.computedColor = e.Colors.Active
	case e.isUnderMouse:
		e.computedColor = e.Colors.Hover
	default:
		e.computedColor = e.Colors.Normal
	}
}

// resetInteraction clears the per-frame and hold state, as if evaluated
// against an empty input.
func (e *Element) resetInteraction() {
	e.isUnderMouse = false
	e.isActive = false
	e.isBeingHeld = false
	e.recomputeColor()
}

func (e *Element) setSelected(selected bool, ev SelectEvent) {
	if e.isSelected == selected {
		return
	}
	e.isSelected = selected
	e.recomputeColor()
	observers := e.deselected
	if selected {
		observers = e.selected
	}
	for _, fn := range observers {
		fn(ev)
	}
}

func (e *Element) OnMouseDown(fn func(*MouseEvent))   { e.mouseDown = append(e.mouseDown, fn) }
func (e *Element) OnMouseUp(fn func(*MouseEvent))     { e.mouseUp = append(e.mouseUp, fn) }
func (e *Element) OnDoubleClick(fn func(*MouseEvent)) { e.doubleClick = append(e.doubleClick, fn) }
func (e *Element) OnSelect(fn func(SelectEvent))      { e.selected = append(e.selected, fn) }
func (e *Element) OnDeselect(fn func(SelectEvent))    { e.deselected = append(e.deselected, fn) }

func fire(observers []func(*MouseEvent), ev *MouseEvent) {
	for _, fn := range observers {
		fn(ev)
	}
}
