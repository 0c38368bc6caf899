package camera

// PanDirection represents a direction to pan the view
type PanDirection int

const (
	PanLeft PanDirection = iota
	PanRight
	PanUp
	PanDown
)

// PanSpeed in pixels per frame
const PanSpeed = 20

// Pan moves the view in the specified direction by a fixed number of pixels
func (c *Camera) Pan(dir PanDirection) {
	switch dir {
	case PanLeft:
		c.PanBy(PanSpeed, 0)
	case PanRight:
		c.PanBy(-PanSpeed, 0)
	case PanUp:
		c.PanBy(0, PanSpeed)
	case PanDown:
		c.PanBy(0, -PanSpeed)
	}
}

// PanBy drags the world by screen pixel offsets: positive dx moves the
// content right, which moves the view left
func (c *Camera) PanBy(dx, dy float64) {
	c.CenterX -= dx / c.Zoom
	c.CenterY -= dy / c.Zoom
}
