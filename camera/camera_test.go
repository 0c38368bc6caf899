package camera

import (
	"math"
	"testing"
)

func TestScreenToWorld(t *testing.T) {
	tests := []struct {
		name         string
		cx, cy, zoom float64
		sx, sy       float64
		wantX, wantY float64
	}{
		{
			name:  "Screen centre is camera centre",
			cx:    10,
			cy:    -20,
			zoom:  1,
			sx:    400,
			sy:    300,
			wantX: 10,
			wantY: -20,
		},
		{
			name:  "Top-left corner at zoom 1",
			zoom:  1,
			sx:    0,
			sy:    0,
			wantX: -400,
			wantY: -300,
		},
		{
			name:  "Top-left corner at zoom 2",
			zoom:  2,
			sx:    0,
			sy:    0,
			wantX: -200,
			wantY: -150,
		},
		{
			name:  "Right of centre at zoom 0.5",
			cx:    100,
			zoom:  0.5,
			sx:    500,
			sy:    300,
			wantX: 300,
			wantY: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(800, 600, tt.cx, tt.cy, tt.zoom)
			gotX, gotY := c.ScreenToWorld(tt.sx, tt.sy)
			if math.Abs(gotX-tt.wantX) > 1e-9 || math.Abs(gotY-tt.wantY) > 1e-9 {
				t.Errorf("got (%f, %f); want (%f, %f)", gotX, gotY, tt.wantX, tt.wantY)
			}

			backX, backY := c.WorldToScreen(gotX, gotY)
			if math.Abs(backX-tt.sx) > 1e-9 || math.Abs(backY-tt.sy) > 1e-9 {
				t.Errorf("WorldToScreen round trip got (%f, %f); want (%f, %f)", backX, backY, tt.sx, tt.sy)
			}
		})
	}
}

func TestZoomAtPointKeepsCursorAnchored(t *testing.T) {
	c := New(800, 600, 0, 0, 1)
	sx, sy := 650.0, 120.0
	beforeX, beforeY := c.ScreenToWorld(sx, sy)

	c.ZoomAtPoint(true, sx, sy)
	if c.Zoom <= 1 {
		t.Fatalf("zoom did not increase: %f", c.Zoom)
	}
	afterX, afterY := c.ScreenToWorld(sx, sy)
	if math.Abs(afterX-beforeX) > 1e-9 || math.Abs(afterY-beforeY) > 1e-9 {
		t.Errorf("anchor moved from (%f, %f) to (%f, %f)", beforeX, beforeY, afterX, afterY)
	}
}

func TestZoomClamped(t *testing.T) {
	c := New(800, 600, 0, 0, MaxZoom)
	cx, cy := c.CenterX, c.CenterY
	c.ZoomAtPoint(true, 10, 10)
	if c.Zoom != MaxZoom {
		t.Errorf("zoom = %f; want %f", c.Zoom, MaxZoom)
	}
	if c.CenterX != cx || c.CenterY != cy {
		t.Errorf("centre moved at max zoom: (%f, %f)", c.CenterX, c.CenterY)
	}

	c = New(800, 600, 0, 0, 0.01)
	if c.Zoom != MinZoom {
		t.Errorf("New did not clamp zoom: %f", c.Zoom)
	}
	c.ZoomOut()
	if c.Zoom != MinZoom {
		t.Errorf("ZoomOut went below minimum: %f", c.Zoom)
	}
}

func TestPanByMovesContentWithPointer(t *testing.T) {
	c := New(800, 600, 0, 0, 2)
	wx, wy := c.ScreenToWorld(100, 100)

	c.PanBy(30, -10)
	sx, sy := c.WorldToScreen(wx, wy)
	if math.Abs(sx-130) > 1e-9 || math.Abs(sy-90) > 1e-9 {
		t.Errorf("world point now at (%f, %f); want (130, 90)", sx, sy)
	}
}

func TestPanDirections(t *testing.T) {
	tests := []struct {
		dir          PanDirection
		wantX, wantY float64
	}{
		{PanLeft, -PanSpeed, 0},
		{PanRight, PanSpeed, 0},
		{PanUp, 0, -PanSpeed},
		{PanDown, 0, PanSpeed},
	}
	for _, tt := range tests {
		c := New(800, 600, 0, 0, 1)
		c.Pan(tt.dir)
		if c.CenterX != tt.wantX || c.CenterY != tt.wantY {
			t.Errorf("Pan(%d) centre = (%f, %f); want (%f, %f)", tt.dir, c.CenterX, c.CenterY, tt.wantX, tt.wantY)
		}
	}
}

func BenchmarkScreenToWorld(b *testing.B) {
	c := New(1920, 1080, 123.4, -56.7, 1.7)
	for i := 0; i < b.N; i++ {
		c.ScreenToWorld(float64(i%1920), float64(i%1080))
	}
}
