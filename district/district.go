package district

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/OpticalFlyer/districts/playback"
	"github.com/OpticalFlyer/districts/ui"
)

const (
	MinWidth     = 120.0
	MinHeight    = 60.0
	headerHeight = 24.0
	rowHeight    = 20.0
	rowPadding   = 6.0
	gripSize     = 12.0
)

// Track is one audio file inside a district, drawn as a row.
type Track struct {
	Path string

	district *District
	elem     *ui.Element
	player   playback.Player
}

func (t *Track) Name() string {
	return strings.TrimSuffix(filepath.Base(t.Path), filepath.Ext(t.Path))
}

func (t *Track) Element() *ui.Element { return t.elem }

func (t *Track) IsPlaying() bool {
	return t.player != nil && t.player.IsPlaying()
}

// open creates the player on first use.
func (t *Track) open() bool {
	if t.player != nil {
		return true
	}
	p, err := t.district.canvas.opener.Open(t.Path)
	if err != nil {
		log.Printf("district %q: %v", t.district.Name, err)
		return false
	}
	t.player = p
	return true
}

func (t *Track) Play() {
	if !t.open() {
		return
	}
	t.player.SetVolume(t.district.effectiveVolume())
	t.player.Play()
}

func (t *Track) Pause() {
	if t.player != nil {
		t.player.Pause()
	}
}

func (t *Track) Stop() {
	if t.player == nil {
		return
	}
	if err := t.player.Stop(); err != nil {
		log.Printf("district %q: stopping %s: %v", t.district.Name, t.Path, err)
	}
}

func (t *Track) TogglePlay() {
	if t.IsPlaying() {
		t.Pause()
		return
	}
	t.Play()
}

func (t *Track) close() {
	if t.player == nil {
		return
	}
	if err := t.player.Close(); err != nil {
		log.Printf("district %q: closing %s: %v", t.district.Name, t.Path, err)
	}
	t.player = nil
}

// District is a movable, resizable group of tracks on the canvas. Its body
// element is the depth container for the resize grip and the track rows.
type District struct {
	Name   string
	Volume float64

	canvas *Canvas
	body   *ui.Element
	grip   *ui.Draggable
	tracks []*Track
}

func (d *District) Body() *ui.Element { return d.body }

func (d *District) Tracks() []*Track { return d.tracks }

func (d *District) Bounds() ui.Rectangle { return d.body.Bounds() }

// MoveBy shifts the district and its children.
func (d *District) MoveBy(delta ui.Vec) {
	d.body.Position = d.body.Position.Add(delta)
	d.layout()
}

// SetVolume sets the district volume, clamped to [0, 1], and applies it to
// open players.
func (d *District) SetVolume(v float64) {
	d.Volume = max(0, min(1, v))
	for _, t := range d.tracks {
		if t.player != nil {
			t.player.SetVolume(d.effectiveVolume())
		}
	}
}

func (d *District) effectiveVolume() float64 {
	return d.Volume * d.canvas.MasterVolume
}

func (d *District) IsPlaying() bool {
	for _, t := range d.tracks {
		if t.IsPlaying() {
			return true
		}
	}
	return false
}

// TogglePlay pauses every track if any is playing, otherwise plays them
// all.
func (d *District) TogglePlay() {
	if d.IsPlaying() {
		for _, t := range d.tracks {
			t.Pause()
		}
		return
	}
	for _, t := range d.tracks {
		t.Play()
	}
}

func (d *District) Stop() {
	for _, t := range d.tracks {
		t.Stop()
	}
}

func (d *District) addTrack(path string) *Track {
	c := d.canvas
	t := &Track{Path: path, district: d}
	t.elem = ui.NewElement(0, 0, 0, rowHeight, c.palettes.Track)
	t.elem.Selectable = true
	t.elem.DoubleClickMaxDuration = c.doubleClick
	t.elem.SetDepthContainer(d.body)
	t.elem.OnMouseDown(func(ev *ui.MouseEvent) {
		c.raise(d)
		if ev.Button == ui.ButtonRight {
			t.Stop()
		}
	})
	t.elem.OnDoubleClick(func(*ui.MouseEvent) { t.TogglePlay() })
	d.tracks = append(d.tracks, t)
	c.ui.Register(t.elem)
	d.layout()
	return t
}

// elements lists every element owned by the district.
func (d *District) elements() []*ui.Element {
	out := []*ui.Element{d.body, d.grip.Element}
	for _, t := range d.tracks {
		out = append(out, t.elem)
	}
	return out
}

// layout places the grip and track rows inside the body. Rows that do not
// fit are hidden and ignored by dispatch.
func (d *District) layout() {
	b := d.body
	d.body.Label = fmt.Sprintf("%s (%d)", d.Name, len(d.tracks))
	d.grip.Element.Position = ui.Vec{X: b.Position.X + b.Size.X - gripSize, Y: b.Position.Y + b.Size.Y - gripSize}

	y := b.Position.Y + headerHeight
	bottom := b.Position.Y + b.Size.Y - gripSize
	for _, t := range d.tracks {
		t.elem.Position = ui.Vec{X: b.Position.X + rowPadding, Y: y}
		t.elem.Size = ui.Vec{X: b.Size.X - 2*rowPadding - gripSize, Y: rowHeight - 2}
		fits := y+rowHeight <= bottom
		t.elem.Interactable = fits
		t.elem.Hidden = !fits
		label := "  " + t.Name()
		if t.IsPlaying() {
			label = "> " + t.Name()
		}
		t.elem.Label = label
		y += rowHeight
	}
}

// resizeToGrip sizes the body so its bottom-right corner follows the grip.
func (d *District) resizeToGrip() {
	g := d.grip.Element
	b := d.body
	b.Size = ui.Vec{
		X: max(MinWidth, g.Position.X+gripSize-b.Position.X),
		Y: max(MinHeight, g.Position.Y+gripSize-b.Position.Y),
	}
}
