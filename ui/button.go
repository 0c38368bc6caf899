package ui

import "image/color"

// DefaultButtonPalette is the grey scheme buttons use unless told otherwise.
var DefaultButtonPalette = Palette{
	Normal:   color.RGBA{150, 150, 150, 255},
	Hover:    color.RGBA{180, 180, 180, 255},
	Active:   color.RGBA{100, 100, 100, 255},
	Disabled: color.RGBA{90, 90, 90, 255},
	Selected: color.RGBA{150, 150, 150, 255},
}

// Button is a screen-space element that calls onClick when released over
// itself. Its position is an offset from the owning panel.
type Button struct {
	x, y    float64
	onClick func()
	elem    *Element
}

func NewButton(x, y float64, text string, onClick func()) *Button {
	b := &Button{
		x:       x,
		y:       y,
		onClick: onClick,
		elem:    NewElement(x, y, 100, 30, DefaultButtonPalette),
	}
	b.elem.ScreenSpace = true
	b.elem.Label = text
	b.elem.OnMouseUp(func(ev *MouseEvent) {
		if ev.Button == ButtonLeft && b.elem.ContainsPoint(ev.Position) && b.onClick != nil {
			b.onClick()
		}
	})
	return b
}

func (b *Button) Element() *Element { return b.elem }

func (b *Button) SetText(text string) { b.elem.Label = text }

// place moves the button relative to its parent's top-left corner.
func (b *Button) place(parent Rectangle) {
	b.elem.Position = Vec{X: parent.X + b.x, Y: parent.Y + b.y}
}

// Bounds returns the button's offset and size within its parent.
func (b *Button) Bounds() Rectangle {
	return Rectangle{
		X:      b.x,
		Y:      b.y,
		Width:  b.elem.Size.X,
		Height: b.elem.Size.Y,
	}
}
