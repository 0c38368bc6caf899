package ui

// Update applies queued registry changes and dispatches one frame of input.
// A focused element receives the input alone; otherwise elements are
// visited in dispatch order and the first one that consumes the frame
// blocks the rest. A frame with non-middle button activity that nobody
// consumes clears the selection.
func (c *Controller) Update(in Input) {
	c.sync()

	served := false
	if c.focused != nil {
		served = c.evaluate(c.focused, in, false)
	} else {
		for _, e := range c.registry.Elements() {
			if c.evaluate(e, in, served) {
				served = true
			}
		}
	}

	if !served && in.clearsSelection() {
		c.selection.Clear()
	}
}

// evaluate updates e's state for this frame and reports whether e
// consumed it.
func (c *Controller) evaluate(e *Element, in Input, firstServed bool) bool {
	if !e.Interactable || firstServed {
		e.isUnderMouse = false
		e.isActive = false
		e.recomputeColor()
		return false
	}

	pos := in.Cursor(e.ScreenSpace)
	e.isUnderMouse = e.ContainsPoint(pos)
	e.isActive = !e.Disabled && e.isUnderMouse && in.Held != ButtonNone

	if e.isUnderMouse && in.Pressed != ButtonNone && !e.Disabled {
		ev := &MouseEvent{Button: in.Pressed, Position: pos}
		fire(e.mouseDown, ev)
		if ev.Propagated {
			e.recomputeColor()
			return false
		}

		now := c.clock.Now()
		if e.hasLastClick && now-e.lastClickTime < e.DoubleClickMaxDuration {
			fire(e.doubleClick, &MouseEvent{Button: in.Pressed, Position: pos})
			e.hasLastClick = false
		} else {
			e.lastClickTime = now
			e.hasLastClick = true
		}

		c.selection.handleClick(e, in.Pressed, pos)
		c.focused = e
		e.isBeingHeld = true
	}

	if e.isBeingHeld && !e.Disabled && in.Released != ButtonNone {
		if c.focused == e {
			c.focused = nil
		}
		e.isBeingHeld = false
		fire(e.mouseUp, &MouseEvent{Button: in.Released, Position: pos})
	}

	e.recomputeColor()
	return e.isUnderMouse || e.isBeingHeld
}
