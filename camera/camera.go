package camera

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// GridSize is the spacing of background grid lines in world units
	GridSize = 64
	// MinZoom and MaxZoom bound the screen pixels per world unit
	MinZoom = 0.1
	MaxZoom = 8.0
	// DefaultZoomStep is the zoom factor applied per wheel notch
	DefaultZoomStep = 1.1
)

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	gridColor       = color.RGBA{44, 44, 52, 255}
	axisColor       = color.RGBA{70, 70, 90, 255}
)

// Camera maps the infinite world plane onto the window
type Camera struct {
	// View state
	CenterX      float64
	CenterY      float64
	Zoom         float64
	ZoomStep     float64
	ScreenWidth  int
	ScreenHeight int
}

// New creates a camera centred on (x, y)
func New(screenWidth, screenHeight int, x, y, zoom float64) *Camera {
	return &Camera{
		CenterX:      x,
		CenterY:      y,
		Zoom:         clampZoom(zoom),
		ZoomStep:     DefaultZoomStep,
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
	}
}

// Scale returns screen pixels per world unit
func (c *Camera) Scale() float64 {
	return c.Zoom
}

// ScreenToWorld converts screen coordinates to world coordinates
func (c *Camera) ScreenToWorld(screenX, screenY float64) (worldX, worldY float64) {
	worldX = c.CenterX + (screenX-float64(c.ScreenWidth)/2)/c.Zoom
	worldY = c.CenterY + (screenY-float64(c.ScreenHeight)/2)/c.Zoom
	return worldX, worldY
}

// WorldToScreen converts world coordinates to screen coordinates
func (c *Camera) WorldToScreen(worldX, worldY float64) (screenX, screenY float64) {
	screenX = (worldX-c.CenterX)*c.Zoom + float64(c.ScreenWidth)/2
	screenY = (worldY-c.CenterY)*c.Zoom + float64(c.ScreenHeight)/2
	return screenX, screenY
}

// ZoomIn zooms by one step around the screen centre
func (c *Camera) ZoomIn() {
	c.Zoom = clampZoom(c.Zoom * c.step())
}

// ZoomOut zooms out by one step around the screen centre
func (c *Camera) ZoomOut() {
	c.Zoom = clampZoom(c.Zoom / c.step())
}

// ZoomAtPoint zooms while keeping the world point under the given screen
// position at the same screen location
func (c *Camera) ZoomAtPoint(zoomIn bool, screenX, screenY float64) {
	newZoom := c.Zoom / c.step()
	if zoomIn {
		newZoom = c.Zoom * c.step()
	}
	newZoom = clampZoom(newZoom)
	if newZoom == c.Zoom {
		return
	}

	worldX, worldY := c.ScreenToWorld(screenX, screenY)
	c.Zoom = newZoom

	// Shift the centre so worldX,worldY lands back under the cursor
	c.CenterX = worldX - (screenX-float64(c.ScreenWidth)/2)/c.Zoom
	c.CenterY = worldY - (screenY-float64(c.ScreenHeight)/2)/c.Zoom
}

func (c *Camera) step() float64 {
	if c.ZoomStep <= 1 {
		return DefaultZoomStep
	}
	return c.ZoomStep
}

func clampZoom(z float64) float64 {
	return math.Max(MinZoom, math.Min(MaxZoom, z))
}

// Draw paints the background and a world-aligned grid
func (c *Camera) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	minX, minY := c.ScreenToWorld(0, 0)
	maxX, maxY := c.ScreenToWorld(float64(c.ScreenWidth), float64(c.ScreenHeight))

	spacing := float64(GridSize)
	// Thin the grid out when zoomed far out so lines stay a few pixels apart
	for spacing*c.Zoom < 8 {
		spacing *= 4
	}

	for x := math.Floor(minX/spacing) * spacing; x <= maxX; x += spacing {
		sx, _ := c.WorldToScreen(x, 0)
		clr := gridColor
		if x == 0 {
			clr = axisColor
		}
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(c.ScreenHeight), 1, clr, false)
	}
	for y := math.Floor(minY/spacing) * spacing; y <= maxY; y += spacing {
		_, sy := c.WorldToScreen(0, y)
		clr := gridColor
		if y == 0 {
			clr = axisColor
		}
		vector.StrokeLine(screen, 0, float32(sy), float32(c.ScreenWidth), float32(sy), 1, clr, false)
	}
}
