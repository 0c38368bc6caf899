package main

import (
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// handleTouchEvents pans the camera with one finger and zooms it with a
// pinch. Touches do not reach the ui engine.
func (g *Districts) handleTouchEvents() {
	touches := ebiten.AppendTouchIDs(make([]ebiten.TouchID, 0, 8))

	if g.lastTouchX == nil {
		g.lastTouchX = make(map[ebiten.TouchID]float64)
		g.lastTouchY = make(map[ebiten.TouchID]float64)
	}

	// Handle touch start
	for _, id := range touches {
		if _, exists := g.lastTouchX[id]; !exists {
			x, y := ebiten.TouchPosition(id)
			g.lastTouchX[id] = float64(x)
			g.lastTouchY[id] = float64(y)
		}
	}

	// Clean up ended touches
	for id := range g.lastTouchX {
		if !slices.Contains(touches, id) {
			delete(g.lastTouchX, id)
			delete(g.lastTouchY, id)
		}
	}

	switch len(touches) {
	case 1: // Single touch - pan
		id := touches[0]
		x, y := ebiten.TouchPosition(id)
		dx := float64(x) - g.lastTouchX[id]
		dy := float64(y) - g.lastTouchY[id]
		if dx != 0 || dy != 0 {
			g.camera.PanBy(dx, dy)
		}
		g.lastTouchX[id] = float64(x)
		g.lastTouchY[id] = float64(y)

	case 2: // Two finger touch - pinch to zoom
		id1, id2 := touches[0], touches[1]
		x1, y1 := ebiten.TouchPosition(id1)
		x2, y2 := ebiten.TouchPosition(id2)

		currentDist := distance(float64(x1), float64(y1), float64(x2), float64(y2))
		prevDist := distance(g.lastTouchX[id1], g.lastTouchY[id1], g.lastTouchX[id2], g.lastTouchY[id2])

		midX := (float64(x1) + float64(x2)) / 2
		midY := (float64(y1) + float64(y2)) / 2

		if currentDist > prevDist*1.1 { // Zoom in
			g.camera.ZoomAtPoint(true, midX, midY)
		} else if currentDist < prevDist*0.9 { // Zoom out
			g.camera.ZoomAtPoint(false, midX, midY)
		} else {
			// Keep the reference distance until the pinch crosses a step
			return
		}

		g.lastTouchX[id1], g.lastTouchY[id1] = float64(x1), float64(y1)
		g.lastTouchX[id2], g.lastTouchY[id2] = float64(x2), float64(y2)
	}
}

func distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}
