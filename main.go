package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/OpticalFlyer/districts/camera"
	"github.com/OpticalFlyer/districts/config"
	"github.com/OpticalFlyer/districts/district"
	"github.com/OpticalFlyer/districts/playback"
	"github.com/OpticalFlyer/districts/store"
	"github.com/OpticalFlyer/districts/ui"
)

// Size of districts created from the keyboard or the command line
const (
	newDistrictWidth  = 240
	newDistrictHeight = 180
)

// Districts implements ebiten.Game interface.
type Districts struct {
	camera    *camera.Camera
	canvas    *district.Canvas
	panel     *ui.Panel
	play      *ui.Button
	ui        *ui.Controller
	pointer   pointer
	debugMode bool

	layoutPath string

	lastZoomTime float64 // Track last zoom time

	// Touch state for multi-touch interactions
	lastTouchX map[ebiten.TouchID]float64
	lastTouchY map[ebiten.TouchID]float64
}

func (g *Districts) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.save()
		return ebiten.Termination
	}

	in := g.pointer.poll(g.camera)
	g.ui.SetMultiselecting(ebiten.IsKeyPressed(ebiten.KeyShift))

	// Engine first, then the things laid out from element state
	g.ui.Update(in)
	g.panel.Update(in)
	g.canvas.Update(in)

	g.handleShortcuts(in)

	// Only move the camera if nothing has captured the pointer
	if in.Held == ui.ButtonMiddle {
		g.camera.PanBy(in.ScreenDelta.X, in.ScreenDelta.Y)
	} else if !g.ui.IsInteractingWithUI() {
		g.handleCamera(in)
		g.handleTouchEvents()
	}

	ebiten.SetCursorShape(g.cursorShape())
	g.panel.Lines = g.canvas.NowPlaying()
	if g.canvas.SelectedPlaying() {
		g.play.SetText("Pause")
	} else {
		g.play.SetText("Play")
	}
	return nil
}

func (g *Districts) handleShortcuts(in ui.Input) {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.save()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.ui.ToggleSelectAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		g.canvas.RemoveSelected()
	}
	if !ctrl && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.canvas.AddDistrict("", in.World.X, in.World.Y, newDistrictWidth, newDistrictHeight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.canvas.TogglePlaySelected()
	}
}

func (g *Districts) handleCamera(in ui.Input) {
	// Handle keyboard zooming
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || // = key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd) { // numpad +
		g.camera.ZoomIn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || // - key
		inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract) { // numpad -
		g.camera.ZoomOut()
	}

	// Handle mouse wheel zooming with time-based throttling
	currentTime := float64(time.Now().UnixNano()) / 1e9
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 && (currentTime-g.lastZoomTime) > 0.05 {
		g.camera.ZoomAtPoint(wheelY > 0, in.Screen.X, in.Screen.Y)
		g.lastZoomTime = currentTime
	}

	// Handle keyboard panning
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.camera.Pan(camera.PanLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.camera.Pan(camera.PanRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.camera.Pan(camera.PanUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.camera.Pan(camera.PanDown)
	}

	// Left drag on empty canvas pans
	if in.Held == ui.ButtonLeft && in.Pressed == ui.ButtonNone {
		g.camera.PanBy(in.ScreenDelta.X, in.ScreenDelta.Y)
	}
}

func (g *Districts) cursorShape() ebiten.CursorShapeType {
	if shape := g.panel.CursorShape(); shape != ebiten.CursorShapeDefault {
		return shape
	}
	for _, d := range g.canvas.Districts() {
		if d.Body().IsBeingHeld() {
			return ebiten.CursorShapeMove
		}
	}
	return ebiten.CursorShapeDefault
}

func (g *Districts) save() {
	layout := store.Layout{
		Camera: store.CameraState{
			X:    g.camera.CenterX,
			Y:    g.camera.CenterY,
			Zoom: g.camera.Zoom,
		},
		Districts: g.canvas.States(),
	}
	if err := store.Save(g.layoutPath, layout); err != nil {
		log.Printf("saving layout: %v", err)
		return
	}
	log.Printf("layout saved to %s", g.layoutPath)
}

func (g *Districts) Draw(screen *ebiten.Image) {
	g.camera.Draw(screen)

	// Draw districts and the HUD
	g.ui.Draw(screen, g.camera)
	g.panel.DrawText(screen)

	// Draw debug overlay if enabled
	if g.debugMode {
		redColor := color.RGBA{R: 255, A: 255}
		strokeWidth := float32(1.0)

		// Draw crosshair
		centerX := float32(g.camera.ScreenWidth / 2)
		centerY := float32(g.camera.ScreenHeight / 2)
		crosshairSize := float32(10.0)

		vector.StrokeLine(screen,
			centerX-crosshairSize, centerY,
			centerX+crosshairSize, centerY,
			strokeWidth, redColor, false)
		vector.StrokeLine(screen,
			centerX, centerY-crosshairSize,
			centerX, centerY+crosshairSize,
			strokeWidth, redColor, false)

		focused := "none"
		if f := g.ui.Focused(); f != nil {
			focused = fmt.Sprint(f.ID())
		}
		debugText := fmt.Sprintf("Center: %.1f, %.1f\nZoom: %.2f\nElements: %d\nSelected: %d\nFocused: %s\nFPS: %.0f",
			g.camera.CenterX, g.camera.CenterY, g.camera.Zoom,
			len(g.ui.Elements()), g.ui.Selection().Len(), focused, ebiten.ActualFPS())
		ebitenutil.DebugPrintAt(screen, debugText, 4, g.camera.ScreenHeight-100)
	}
}

func (g *Districts) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.camera.ScreenWidth = outsideWidth
	g.camera.ScreenHeight = outsideHeight
	g.panel.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// newNowPlayingPanel builds the HUD panel and registers its elements. The
// returned button plays or pauses the selected districts.
func newNowPlayingPanel(ctrl *ui.Controller, canvas *district.Canvas) (*ui.Panel, *ui.Button) {
	panel := ui.NewPanel(10, 10, 230, 200, "Now playing")
	play := ui.NewButton(10, 28, "Play", canvas.TogglePlaySelected)
	panel.AddButton(play)
	panel.AddButton(ui.NewButton(120, 28, "Stop all", canvas.StopAll))
	for _, e := range panel.Elements() {
		ctrl.Register(e)
	}
	return panel, play
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: districts [audio files or playlists...]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}
	districtPalette, trackPalette, gripPalette, err := settings.Palettes()
	if err != nil {
		log.Fatalf("loading settings: %v", err)
	}
	layoutPath, err := settings.LayoutPath()
	if err != nil {
		log.Fatalf("locating layout: %v", err)
	}
	layout, err := store.Load(layoutPath)
	if err != nil {
		log.Printf("starting with an empty canvas: %v", err)
		layout = store.Layout{}
	}

	width, height := settings.WindowSize()
	uiController := ui.NewController(ui.NewSystemClock())

	view := layout.Camera
	if view.Zoom <= 0 {
		view = store.CameraState{Zoom: 1}
	}
	cam := camera.New(width, height, view.X, view.Y, view.Zoom)
	cam.ZoomStep = settings.ZoomStep()

	canvas := district.NewCanvas(uiController, playback.NewBackend(settings.SampleRate()), district.Palettes{
		District: districtPalette,
		Track:    trackPalette,
		Grip:     gripPalette,
	}, settings.DoubleClickSeconds())
	canvas.MasterVolume = settings.Volume()
	canvas.Restore(layout.Districts)

	if files := flag.Args(); len(files) > 0 {
		d := canvas.AddDistrict("", cam.CenterX-newDistrictWidth/2, cam.CenterY-newDistrictHeight/2, newDistrictWidth, newDistrictHeight)
		if n := canvas.AddFiles(d, files); n == 0 {
			log.Printf("no playable files among %d arguments", len(files))
		}
	}

	panel, play := newNowPlayingPanel(uiController, canvas)
	app := &Districts{
		camera:       cam,
		canvas:       canvas,
		panel:        panel,
		play:         play,
		ui:           uiController,
		layoutPath:   layoutPath,
		lastZoomTime: float64(time.Now().UnixNano()) / 1e9,
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(settings.WindowTitle())
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
	canvas.Close()
}
