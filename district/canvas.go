package district

import (
	"fmt"
	"log"
	"slices"

	"github.com/OpticalFlyer/districts/playback"
	"github.com/OpticalFlyer/districts/store"
	"github.com/OpticalFlyer/districts/ui"
)

// Palettes are the colours for district bodies, track rows and grips.
type Palettes struct {
	District ui.Palette
	Track    ui.Palette
	Grip     ui.Palette
}

// Canvas owns the districts laid out on the world plane.
type Canvas struct {
	// MasterVolume scales every district volume.
	MasterVolume float64

	ui          *ui.Controller
	opener      playback.Opener
	palettes    Palettes
	doubleClick float64
	depths      ui.DepthAllocator

	districts []*District
	byBody    map[*ui.Element]*District
	created   int
}

func NewCanvas(ctrl *ui.Controller, opener playback.Opener, palettes Palettes, doubleClick float64) *Canvas {
	return &Canvas{
		MasterVolume: 1,
		ui:           ctrl,
		opener:       opener,
		palettes:     palettes,
		doubleClick:  doubleClick,
		byBody:       make(map[*ui.Element]*District),
	}
}

func (c *Canvas) Districts() []*District { return c.districts }

// AddDistrict creates an empty district on top of the others. An empty
// name gets a numbered default.
func (c *Canvas) AddDistrict(name string, x, y, width, height float64) *District {
	c.created++
	if name == "" {
		name = fmt.Sprintf("District %d", c.created)
	}

	d := &District{Name: name, Volume: 1, canvas: c}

	d.body = ui.NewElement(x, y, max(MinWidth, width), max(MinHeight, height), c.palettes.District)
	d.body.Selectable = true
	d.body.SelectInSelectAll = true
	d.body.DoubleClickMaxDuration = c.doubleClick
	d.body.OnMouseDown(func(*ui.MouseEvent) { c.raise(d) })
	d.body.OnDoubleClick(func(*ui.MouseEvent) { d.TogglePlay() })

	grip := ui.NewElement(0, 0, gripSize, gripSize, c.palettes.Grip)
	grip.SetDepthContainer(d.body)
	grip.SetDepth(-1)
	d.grip = ui.NewDraggable(grip)
	d.grip.OnDragBegin(func() { c.raise(d) })

	c.raise(d)
	d.layout()

	c.districts = append(c.districts, d)
	c.byBody[d.body] = d
	c.ui.Register(d.body)
	c.ui.Register(grip)
	return d
}

// RemoveDistrict stops and releases the district's players and takes its
// elements out of the engine.
func (c *Canvas) RemoveDistrict(d *District) {
	i := slices.Index(c.districts, d)
	if i < 0 {
		return
	}
	c.districts = slices.Delete(c.districts, i, i+1)
	delete(c.byBody, d.body)
	for _, t := range d.tracks {
		t.close()
	}
	for _, e := range d.elements() {
		c.ui.Deregister(e)
	}
}

// Selected returns the districts whose body is selected.
func (c *Canvas) Selected() []*District {
	var out []*District
	for _, d := range c.districts {
		if d.body.IsSelected() {
			out = append(out, d)
		}
	}
	return out
}

func (c *Canvas) RemoveSelected() {
	for _, d := range c.Selected() {
		c.RemoveDistrict(d)
	}
}

// SelectedPlaying reports whether any selected district has a track playing.
func (c *Canvas) SelectedPlaying() bool {
	for _, d := range c.Selected() {
		if d.IsPlaying() {
			return true
		}
	}
	return false
}

func (c *Canvas) TogglePlaySelected() {
	for _, d := range c.Selected() {
		d.TogglePlay()
	}
}

func (c *Canvas) StopAll() {
	for _, d := range c.districts {
		d.Stop()
	}
}

// Close releases every player.
func (c *Canvas) Close() {
	for _, d := range c.districts {
		for _, t := range d.tracks {
			t.close()
		}
	}
}

// DistrictAt returns the topmost district containing the world point p.
func (c *Canvas) DistrictAt(p ui.Vec) *District {
	for _, e := range c.ui.Elements() {
		if d, ok := c.byBody[e]; ok && e.ContainsPoint(p) {
			return d
		}
	}
	return nil
}

// AddFiles appends tracks to d. Playlists are expanded and files the
// backend cannot play are skipped. It returns the number of tracks added.
func (c *Canvas) AddFiles(d *District, paths []string) int {
	added := 0
	for _, path := range paths {
		if store.IsPlaylist(path) {
			entries, err := store.ReadPlaylist(path)
			if err != nil {
				log.Printf("district %q: %v", d.Name, err)
				continue
			}
			added += c.AddFiles(d, entries)
			continue
		}
		if !playback.Supported(path) {
			log.Printf("district %q: skipping %s: %v", d.Name, path, playback.ErrUnsupportedFormat)
			continue
		}
		d.addTrack(path)
		added++
	}
	return added
}

func (c *Canvas) raise(d *District) {
	c.depths.Raise(d.body)
}

// Update moves and resizes districts from this frame's input. Call it
// after Controller.Update. Holding a selected district with the left or
// right button drags the whole selection; a right press keeps the
// selection intact.
func (c *Canvas) Update(in ui.Input) {
	if in.Held == ui.ButtonLeft || in.Held == ui.ButtonRight {
		for _, d := range c.districts {
			if !d.body.IsBeingHeld() {
				continue
			}
			group := []*District{d}
			if d.body.IsSelected() {
				group = c.Selected()
			}
			for _, g := range group {
				g.MoveBy(in.WorldDelta)
			}
			break
		}
	}

	for _, d := range c.districts {
		if d.grip.Update(in) {
			d.resizeToGrip()
		}
		d.layout()
	}
}

// NowPlaying lists "district: track" for every playing track.
func (c *Canvas) NowPlaying() []string {
	var lines []string
	for _, d := range c.districts {
		for _, t := range d.tracks {
			if t.IsPlaying() {
				lines = append(lines, fmt.Sprintf("%s: %s", d.Name, t.Name()))
			}
		}
	}
	return lines
}

// States captures the districts for saving.
func (c *Canvas) States() []store.DistrictState {
	states := make([]store.DistrictState, 0, len(c.districts))
	for _, d := range c.districts {
		b := d.body.Bounds()
		volume := d.Volume
		s := store.DistrictState{
			Name:   d.Name,
			X:      b.X,
			Y:      b.Y,
			Width:  b.Width,
			Height: b.Height,
			Volume: &volume,
		}
		for _, t := range d.tracks {
			s.Tracks = append(s.Tracks, t.Path)
		}
		states = append(states, s)
	}
	return states
}

// Restore adds districts from saved states. Players open on first play.
func (c *Canvas) Restore(states []store.DistrictState) {
	for _, s := range states {
		d := c.AddDistrict(s.Name, s.X, s.Y, s.Width, s.Height)
		if s.Volume != nil {
			d.SetVolume(*s.Volume)
		}
		for _, path := range s.Tracks {
			d.addTrack(path)
		}
	}
}
