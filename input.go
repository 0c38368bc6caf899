package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/districts/camera"
	"github.com/OpticalFlyer/districts/ui"
)

// Checked in priority order; when several buttons change in the same
// frame the first one wins.
var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	ui     ui.MouseButton
}{
	{ebiten.MouseButtonLeft, ui.ButtonLeft},
	{ebiten.MouseButtonRight, ui.ButtonRight},
	{ebiten.MouseButtonMiddle, ui.ButtonMiddle},
}

// pointer snapshots the mouse once per frame for the ui engine.
type pointer struct {
	last    ui.Vec
	started bool
}

func (p *pointer) poll(cam *camera.Camera) ui.Input {
	x, y := ebiten.CursorPosition()
	screen := ui.Vec{X: float64(x), Y: float64(y)}
	if !p.started {
		p.last = screen
		p.started = true
	}

	wx, wy := cam.ScreenToWorld(screen.X, screen.Y)
	delta := screen.Sub(p.last)
	p.last = screen

	in := ui.Input{
		Screen:      screen,
		World:       ui.Vec{X: wx, Y: wy},
		ScreenDelta: delta,
		WorldDelta:  ui.Vec{X: delta.X / cam.Scale(), Y: delta.Y / cam.Scale()},
	}

	// Clicks that focus the window are not meant for the canvas
	if !ebiten.IsFocused() {
		return in
	}

	for _, b := range mouseButtons {
		if in.Pressed == ui.ButtonNone && inpututil.IsMouseButtonJustPressed(b.ebiten) {
			in.Pressed = b.ui
		}
		if in.Held == ui.ButtonNone && ebiten.IsMouseButtonPressed(b.ebiten) {
			in.Held = b.ui
		}
		if in.Released == ui.ButtonNone && inpututil.IsMouseButtonJustReleased(b.ebiten) {
			in.Released = b.ui
		}
	}
	return in
}
