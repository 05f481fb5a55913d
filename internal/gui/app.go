// Package gui is the raylib desktop window.
package gui

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/photosim/internal/controller"
	"github.com/san-kum/photosim/internal/photon"
	"github.com/san-kum/photosim/internal/scene"
	"github.com/san-kum/photosim/internal/view"
	"github.com/san-kum/photosim/internal/viz"
)

const (
	windowWidth  = 900
	windowHeight = 520
	sceneX       = 10
	sceneY       = 40
	panelX       = 540
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColGrid    = rl.NewColor(30, 30, 30, 255)
)

type action int

const (
	actNone action = iota
	actWavelengthDown
	actWavelengthUp
	actIntensityDown
	actIntensityUp
	actVoltageDown
	actVoltageUp
	actVoltageZero
	actNextMetal
	actPrevMetal
	actNextTheme
)

// App owns the window state. All fields are touched from the main loop only.
type App struct {
	ctrl  controller.Communicator
	view  *view.View
	frame *view.MainFrame
	theme viz.Theme
	fps   int32
	log   *slog.Logger

	target  rl.RenderTexture2D
	surface *RaylibSurface
	Font    rl.Font
}

// NewApp connects a main frame to ctrl. It does not touch raylib, so it is
// safe to call before the window exists.
func NewApp(ctrl *controller.Controller, theme viz.Theme, fps int, log *slog.Logger) (*App, error) {
	if log == nil {
		log = slog.Default()
	}
	frame := view.NewMainFrame(theme.SceneStyle())
	v, err := view.Connect(ctrl, func(controller.Communicator) (view.Frame, error) { return frame, nil }, log)
	if err != nil {
		return nil, err
	}
	if fps <= 0 {
		fps = 60
	}
	return &App{
		ctrl:    ctrl,
		view:    v,
		frame:   frame,
		theme:   theme,
		fps:     int32(fps),
		log:     log,
		surface: NewRaylibSurface(rl.NewVector2(0, 0), 1),
	}, nil
}

func initWindow(fps int32) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(windowWidth, windowHeight, "photosim")
	rl.SetTargetFPS(fps)
	rl.SetExitKey(0)
}

// Run opens the window and blocks until it is closed.
func (a *App) Run() {
	initWindow(a.fps)
	defer rl.CloseWindow()

	a.Font = rl.GetFontDefault()
	a.target = rl.LoadRenderTexture(scene.Width, scene.Height)
	defer rl.UnloadRenderTexture(a.target)
	a.frame.CathodePanel().Invalidate()

	a.log.Info("window opened", "fps", a.fps)
	a.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
			return
		}
		for _, act := range pollActions() {
			a.apply(act)
		}
		a.Draw()
	}
}

func keyHit(k int32) bool {
	return rl.IsKeyPressed(k) || rl.IsKeyPressedRepeat(k)
}

func pollActions() []action {
	var acts []action
	bindings := []struct {
		keys []int32
		act  action
	}{
		{[]int32{rl.KeyLeft, rl.KeyH}, actWavelengthDown},
		{[]int32{rl.KeyRight, rl.KeyL}, actWavelengthUp},
		{[]int32{rl.KeyDown, rl.KeyJ}, actIntensityDown},
		{[]int32{rl.KeyUp, rl.KeyK}, actIntensityUp},
		{[]int32{rl.KeyMinus, rl.KeyKpSubtract}, actVoltageDown},
		{[]int32{rl.KeyEqual, rl.KeyKpAdd}, actVoltageUp},
		{[]int32{rl.KeyZero}, actVoltageZero},
		{[]int32{rl.KeyT}, actNextTheme},
	}
	for _, b := range bindings {
		for _, k := range b.keys {
			if keyHit(k) {
				acts = append(acts, b.act)
				break
			}
		}
	}
	if rl.IsKeyPressed(rl.KeyM) {
		if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
			acts = append(acts, actPrevMetal)
		} else {
			acts = append(acts, actNextMetal)
		}
	}
	return acts
}

// apply turns a user action into a controller call.
func (a *App) apply(act action) {
	in := a.ctrl.Inputs()
	switch act {
	case actWavelengthDown:
		a.ctrl.ChangeWavelength(int(in.Wavelength) - 5)
	case actWavelengthUp:
		a.ctrl.ChangeWavelength(int(in.Wavelength) + 5)
	case actIntensityDown:
		a.ctrl.ChangeIntensity(int(in.Intensity) - 5)
	case actIntensityUp:
		a.ctrl.ChangeIntensity(int(in.Intensity) + 5)
	case actVoltageDown:
		a.ctrl.ChangeVoltage(in.Voltage - 0.5)
	case actVoltageUp:
		a.ctrl.ChangeVoltage(in.Voltage + 0.5)
	case actVoltageZero:
		a.ctrl.ChangeVoltage(0)
	case actNextMetal, actPrevMetal:
		dir := 1
		if act == actPrevMetal {
			dir = -1
		}
		metals := photon.Metals()
		idx := 0
		for i, m := range metals {
			if m.Metal == in.Metal {
				idx = i
			}
		}
		next := metals[(idx+dir+len(metals))%len(metals)]
		if err := a.ctrl.ChangeElement(next.Name); err != nil {
			a.log.Error("change element", "metal", next.Name, "err", err)
		}
	case actNextTheme:
		a.theme = a.theme.Next()
		a.frame.CathodePanel().SetStyle(a.theme.SceneStyle())
	}
}

func (a *App) Draw() {
	// repaint the offscreen scene only when the panel changed
	rl.BeginTextureMode(a.target)
	a.frame.CathodePanel().Render(a.surface)
	rl.EndTextureMode()

	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	// render textures are stored upside down
	src := rl.NewRectangle(0, 0, float32(a.target.Texture.Width), -float32(a.target.Texture.Height))
	rl.DrawTextureRec(a.target.Texture, src, rl.NewVector2(sceneX, sceneY), rl.White)
	rl.DrawRectangleLines(sceneX-1, sceneY-1, scene.Width+2, scene.Height+2, ColGrid)

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("photosim", sceneX, 10, 24, ColSelect)
	a.drawText(":: "+a.theme.Name, 130, 14, 16, ColText)

	y := sceneY
	for _, r := range a.frame.InfoPanel().Readouts() {
		a.drawReadout(r, y)
		y += 24
	}
	y += 12

	in := a.ctrl.Inputs()
	a.drawReadout(view.Readout{Label: "wavelength", Value: fmt.Sprintf("%.0f nm", in.Wavelength)}, y)
	y += 24
	a.drawReadout(view.Readout{Label: "intensity", Value: fmt.Sprintf("%.0f %%", in.Intensity)}, y)
	y += 24
	a.drawReadout(view.Readout{Label: "voltage", Value: fmt.Sprintf("%+.1f V", in.Voltage)}, y)
	y += 36

	for _, r := range a.frame.OutcomePanel().Readouts() {
		a.drawReadout(r, y)
		y += 24
	}

	a.drawText("[<>] WAVELENGTH  [^v] INTENSITY  [+-] VOLTAGE", panelX, windowHeight-60, 14, ColTextDim)
	a.drawText("[M] METAL  [T] THEME  [Q] QUIT", panelX, windowHeight-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), sceneX, windowHeight-24, 14, ColTextDim)
}

func (a *App) drawReadout(r view.Readout, y int) {
	a.drawText(r.Label, panelX, y, 16, ColText)
	a.drawText(r.Value, panelX+140, y, 16, ColSelect)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
