package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type DockState int

const (
	dockNone DockState = iota
	dockLeft
	dockRight
	dockTop
	dockBottom
)

const (
	titleBarHeight = 20.0
	gripSize       = 10.0
	minPanelWidth  = 100.0
	minPanelHeight = 50.0
	dockThreshold  = 20.0
	lineHeight     = 16.0
	panelAlpha     = 200
)

var (
	panelPalette = Palette{
		Normal:   color.RGBA{100, 100, 100, panelAlpha},
		Hover:    color.RGBA{100, 100, 100, panelAlpha},
		Active:   color.RGBA{100, 100, 100, panelAlpha},
		Disabled: color.RGBA{70, 70, 70, panelAlpha},
		Selected: color.RGBA{100, 100, 100, panelAlpha},
	}
	titlePalette = Palette{
		Normal:   color.RGBA{60, 60, 60, panelAlpha},
		Hover:    color.RGBA{75, 75, 75, panelAlpha},
		Active:   color.RGBA{33, 150, 243, panelAlpha},
		Disabled: color.RGBA{60, 60, 60, panelAlpha},
		Selected: color.RGBA{60, 60, 60, panelAlpha},
	}
	gripPalette = Palette{
		Normal:   color.RGBA{140, 140, 140, panelAlpha},
		Hover:    color.RGBA{180, 180, 180, panelAlpha},
		Active:   color.RGBA{33, 150, 243, panelAlpha},
		Disabled: color.RGBA{140, 140, 140, panelAlpha},
		Selected: color.RGBA{140, 140, 140, panelAlpha},
	}
)

// Panel is a screen-space window with a draggable title bar, a resize grip
// in its bottom-right corner, buttons and a few lines of text. Dropping the
// panel near a window edge docks it there.
type Panel struct {
	body  *Element
	title *Draggable
	grip  *Draggable

	buttons []*Button
	Lines   []string

	dockState    DockState
	windowWidth  int
	windowHeight int
}

func NewPanel(x, y, width, height float64, title string) *Panel {
	body := NewElement(x, y, width, height, panelPalette)
	body.ScreenSpace = true
	body.SetDepth(OverlayDepth)

	bar := NewElement(x, y, width, titleBarHeight, titlePalette)
	bar.ScreenSpace = true
	bar.Label = title
	bar.SetDepthContainer(body)

	grip := NewElement(x+width-gripSize, y+height-gripSize, gripSize, gripSize, gripPalette)
	grip.ScreenSpace = true
	grip.SetDepthContainer(body)
	grip.SetDepth(-1)

	p := &Panel{
		body:         body,
		title:        NewDraggable(bar),
		grip:         NewDraggable(grip),
		windowWidth:  800, // Default window size
		windowHeight: 600, // Default window size
	}
	p.title.OnDragBegin(func() { p.dockState = dockNone })
	p.title.OnDragStop(p.checkDocking)
	return p
}

// Elements lists every element the panel owns, for registration.
func (p *Panel) Elements() []*Element {
	out := []*Element{p.body, p.title.Element, p.grip.Element}
	for _, b := range p.buttons {
		out = append(out, b.elem)
	}
	return out
}

// AddButton attaches b below the title bar area; its offset is relative
// to the panel's top-left corner.
func (p *Panel) AddButton(b *Button) {
	b.elem.SetDepthContainer(p.body)
	p.buttons = append(p.buttons, b)
	p.layout()
}

func (p *Panel) Bounds() Rectangle { return p.body.Bounds() }

// Update moves or resizes the panel from this frame's input. Call it
// after Controller.Update.
func (p *Panel) Update(in Input) {
	if p.title.Update(in) {
		p.body.Position = p.title.Element.Position
	}
	if p.grip.Update(in) {
		g := p.grip.Element
		p.body.Size = Vec{
			X: max(minPanelWidth, g.Position.X+gripSize-p.body.Position.X),
			Y: max(minPanelHeight, g.Position.Y+gripSize-p.body.Position.Y),
		}
	}
	p.layout()
}

// layout places the title bar, grip and buttons relative to the body.
func (p *Panel) layout() {
	b := p.body
	p.title.Element.Position = b.Position
	p.title.Element.Size = Vec{X: b.Size.X, Y: titleBarHeight}
	p.grip.Element.Position = Vec{X: b.Position.X + b.Size.X - gripSize, Y: b.Position.Y + b.Size.Y - gripSize}
	for _, btn := range p.buttons {
		btn.place(b.Bounds())
	}
}

func (p *Panel) checkDocking() {
	b := p.body
	switch {
	case b.Position.X < dockThreshold:
		p.dockState = dockLeft
	case float64(p.windowWidth)-(b.Position.X+b.Size.X) < dockThreshold:
		p.dockState = dockRight
	case b.Position.Y < dockThreshold:
		p.dockState = dockTop
	case float64(p.windowHeight)-(b.Position.Y+b.Size.Y) < dockThreshold:
		p.dockState = dockBottom
	default:
		p.dockState = dockNone
	}
	p.UpdateWindowSize(p.windowWidth, p.windowHeight)
}

// UpdateWindowSize keeps a docked panel flush against its edge.
func (p *Panel) UpdateWindowSize(width, height int) {
	p.windowWidth = width
	p.windowHeight = height

	b := p.body
	switch p.dockState {
	case dockLeft:
		b.Position.X = 0
	case dockRight:
		b.Position.X = float64(width) - b.Size.X
	case dockTop:
		b.Position.Y = 0
	case dockBottom:
		b.Position.Y = float64(height) - b.Size.Y
	}
	p.layout()
}

// CursorShape returns the cursor the panel wants for the current hover.
func (p *Panel) CursorShape() ebiten.CursorShapeType {
	switch {
	case p.grip.Element.IsUnderMouse() || p.grip.Dragging():
		return ebiten.CursorShapeNWSEResize
	case p.title.Element.IsUnderMouse() || p.title.Dragging():
		return ebiten.CursorShapeMove
	default:
		return ebiten.CursorShapeDefault
	}
}

// DrawText prints the panel's lines under the title bar and its buttons.
func (p *Panel) DrawText(screen *ebiten.Image) {
	b := p.body
	y := b.Position.Y + titleBarHeight + 4
	for _, btn := range p.buttons {
		y = max(y, b.Position.Y+btn.y+btn.elem.Size.Y+4)
	}
	for _, line := range p.Lines {
		if y+lineHeight > b.Position.Y+b.Size.Y {
			return
		}
		ebitenutil.DebugPrintAt(screen, line, int(b.Position.X)+6, int(y))
		y += lineHeight
	}
}
