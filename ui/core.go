package ui

import "time"

// Vec is a 2D point or offset.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v-o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{X: v.X - o.X, Y: v.Y - o.Y}
}

// Rectangle represents the bounds of an element
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

// Contains reports whether p lies inside r. Both the top-left and the
// bottom-right edges count as inside.
func (r Rectangle) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// MouseButton identifies a pointer button. ButtonNone marks an absent slot
// in an Input.
type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "none"
	}
}

// Input is the snapshot of pointer state for one frame. At most one button
// occupies each of Pressed, Held and Released; when several physical
// buttons are active the input layer picks one of them.
type Input struct {
	Pressed  MouseButton
	Held     MouseButton
	Released MouseButton

	Screen      Vec
	World       Vec
	ScreenDelta Vec
	WorldDelta  Vec
}

// Cursor returns the pointer position in the requested space.
func (in Input) Cursor(screenSpace bool) Vec {
	if screenSpace {
		return in.Screen
	}
	return in.World
}

// Delta returns the pointer movement since last frame in the requested space.
func (in Input) Delta(screenSpace bool) Vec {
	if screenSpace {
		return in.ScreenDelta
	}
	return in.WorldDelta
}

// clearsSelection reports whether the frame carried any non-middle button
// activity. Middle-button activity belongs to camera panning.
func (in Input) clearsSelection() bool {
	for _, b := range [...]MouseButton{in.Pressed, in.Held, in.Released} {
		if b != ButtonNone && b != ButtonMiddle {
			return true
		}
	}
	return false
}

// Clock supplies monotonic time in seconds for double-click detection.
type Clock interface {
	Now() float64
}

// SystemClock reads the monotonic clock relative to its creation.
type SystemClock struct {
	start time.Time
}

func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// Viewport maps world coordinates onto the screen for drawing world-space
// elements.
type Viewport interface {
	WorldToScreen(x, y float64) (float64, float64)
	Scale() float64
}
