package view

import (
	"fmt"
	"log/slog"

	"github.com/san-kum/photosim/internal/controller"
	"github.com/san-kum/photosim/internal/photon"
	"github.com/san-kum/photosim/internal/scene"
)

// Frame is the main window: a drawing panel plus two text panels.
type Frame interface {
	InfoPanel() *InfoPanel
	OutcomePanel() *OutcomePanel
	CathodePanel() *scene.Panel
}

// FrameOpener builds the main window for a controller.
type FrameOpener func(ctrl controller.Communicator) (Frame, error)

// MainFrame is a Frame without any window system attached. The terminal and
// raylib front ends embed it.
type MainFrame struct {
	info    *InfoPanel
	outcome *OutcomePanel
	cathode *scene.Panel
}

func NewMainFrame(style scene.Style) *MainFrame {
	return &MainFrame{
		info:    NewInfoPanel(),
		outcome: NewOutcomePanel(),
		cathode: scene.NewPanel(style),
	}
}

func (f *MainFrame) InfoPanel() *InfoPanel { return f.info }
func (f *MainFrame) OutcomePanel() *OutcomePanel { return f.outcome }
func (f *MainFrame) CathodePanel() *scene.Panel { return f.cathode }

// OpenMainFrame is a FrameOpener for a headless MainFrame.
func OpenMainFrame(style scene.Style) FrameOpener {
	return func(controller.Communicator) (Frame, error) {
		return NewMainFrame(style), nil
	}
}

// View routes controller updates to the panels of the main frame.
type View struct {
	ctrl  controller.Communicator
	frame Frame
	log   *slog.Logger
}

var _ controller.Display = (*View)(nil)

// New creates a view. A nil logger uses slog.Default().
func New(log *slog.Logger) *View {
	if log == nil {
		log = slog.Default()
	}
	return &View{log: log}
}

func (v *View) Controller() controller.Communicator { return v.ctrl }

func (v *View) SetController(ctrl controller.Communicator) {
	v.ctrl = ctrl
}

func (v *View) Frame() Frame { return v.frame }

// InitializeMainFrame opens the main window. It fails immediately when no
// controller has been set.
func (v *View) InitializeMainFrame(open FrameOpener) error {
	if v.ctrl == nil {
		return ErrNoController
	}
	frame, err := open(v.ctrl)
	if err != nil {
		return fmt.Errorf("open main frame: %w", err)
	}
	v.frame = frame
	return nil
}

func (v *View) ready(what string) bool {
	if v.frame == nil {
		v.log.Warn("update dropped", "value", what, "err", ErrNoFrame)
		return false
	}
	return true
}

func (v *View) SetElementType(name string) error {
	if v.frame == nil {
		return ErrNoFrame
	}
	m, err := photon.ParseMetal(name)
	if err != nil {
		return err
	}
	v.frame.InfoPanel().ChangeElement(photon.Info(m))
	return nil
}

func (v *View) SetExitEnergy(eV float64) {
	if !v.ready("exit energy") {
		return
	}
	v.frame.OutcomePanel().SetExitEnergyDisplay(eV)
	v.frame.CathodePanel().SetExitEnergy(eV)
}

func (v *View) SetOutcomeCurrent(current photon.ExpNumber) {
	if !v.ready("current") {
		return
	}
	v.frame.OutcomePanel().SetCurrentDisplay(current)
	v.frame.CathodePanel().SetCurrent(current)
}

func (v *View) SetPhotonEnergy(eV float64) {
	if !v.ready("photon energy") {
		return
	}
	v.frame.OutcomePanel().SetPhotonEnergyDisplay(eV)
	v.frame.CathodePanel().SetPhotonEnergy(eV)
}

func (v *View) SetLightIntensity(intensity int) {
	if !v.ready("intensity") {
		return
	}
	v.frame.CathodePanel().SetLightIntensity(intensity)
}

func (v *View) SetWavelength(wavelength int) {
	if !v.ready("wavelength") {
		return
	}
	v.frame.CathodePanel().SetWavelength(wavelength)
}

func (v *View) SetVoltage(voltage float64) {
	if !v.ready("voltage") {
		return
	}
	v.frame.CathodePanel().SetVoltage(voltage)
}

// Connect sets ctrl on a new view, opens the main frame and attaches the
// view to the controller so the panels show the controller's state.
func Connect(ctrl *controller.Controller, open FrameOpener, log *slog.Logger) (*View, error) {
	v := New(log)
	v.SetController(ctrl)
	if err := v.InitializeMainFrame(open); err != nil {
		return nil, err
	}
	if err := ctrl.Attach(v); err != nil {
		return nil, fmt.Errorf("attach view: %w", err)
	}
	return v, nil
}
