package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Controller steps the interaction engine once per frame and draws the
// elements in the same order it dispatches to them.
type Controller struct {
	registry  *Registry
	selection *Selection
	focused   *Element
	clock     Clock
}

// NewController creates a controller reading double-click time from clock.
func NewController(clock Clock) *Controller {
	if clock == nil {
		clock = NewSystemClock()
	}
	registry := NewRegistry()
	return &Controller{
		registry:  registry,
		selection: NewSelection(registry),
		clock:     clock,
	}
}

func (c *Controller) Register(e *Element) { c.registry.Register(e) }

// Deregister removes e at the next frame boundary. An element that was
// never registered is released from focus and selection at once.
func (c *Controller) Deregister(e *Element) {
	if !c.registry.Deregister(e) {
		c.forget(e)
	}
}

// Elements returns the live elements in dispatch order, topmost first.
func (c *Controller) Elements() []*Element { return c.registry.Elements() }

func (c *Controller) Selection() *Selection { return c.selection }

func (c *Controller) Select(e *Element, additive bool) { c.selection.Select(e, additive) }
func (c *Controller) Deselect(e *Element)              { c.selection.Deselect(e) }
func (c *Controller) ClearSelection()                  { c.selection.Clear() }
func (c *Controller) SelectAll()                       { c.selection.SelectAll() }
func (c *Controller) ToggleSelectAll()                 { c.selection.ToggleSelectAll() }

func (c *Controller) Multiselecting() bool      { return c.selection.Multiselecting }
func (c *Controller) SetMultiselecting(on bool) { c.selection.Multiselecting = on }

// Focused returns the element capturing all input, or nil.
func (c *Controller) Focused() *Element { return c.focused }

// SetFocused routes all input to e until it is released or cleared.
func (c *Controller) SetFocused(e *Element) { c.focused = e }

// IsInteractingWithUI returns true while an element captures input
func (c *Controller) IsInteractingWithUI() bool {
	return c.focused != nil
}

// sync applies queued registry changes. Leaving elements drop out of the
// selection and focus; any arrival releases focus.
func (c *Controller) sync() {
	removed, added := c.registry.flush()
	for _, e := range removed {
		c.forget(e)
	}
	if len(added) > 0 {
		c.focused = nil
	}
}

func (c *Controller) forget(e *Element) {
	if c.focused == e {
		c.focused = nil
	}
	if c.selection.Contains(e) {
		c.selection.drop(e, SelectEvent{})
	}
}

// Draw paints the elements back to front. World-space elements go through
// vp; a nil vp draws everything in screen space.
func (c *Controller) Draw(screen *ebiten.Image, vp Viewport) {
	elements := c.registry.Elements()
	for i := len(elements) - 1; i >= 0; i-- {
		e := elements[i]
		if e.Hidden || e.computedColor == nil {
			continue
		}
		x, y := e.Position.X, e.Position.Y
		w, h := e.Size.X, e.Size.Y
		if !e.ScreenSpace && vp != nil {
			x, y = vp.WorldToScreen(x, y)
			w, h = w*vp.Scale(), h*vp.Scale()
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), e.computedColor, true)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, borderColor, true)
		if e.Label != "" && h >= labelHeight {
			ebitenutil.DebugPrintAt(screen, e.Label, int(x)+4, int(y)+2)
		}
	}
}

const labelHeight = 16

var borderColor = color.RGBA{30, 30, 30, 255}
