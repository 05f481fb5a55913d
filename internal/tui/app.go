// Package tui is the terminal front end: a Bubble Tea program that plays the
// part of the main window.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/photosim/internal/automation"
	"github.com/san-kum/photosim/internal/controller"
	"github.com/san-kum/photosim/internal/photon"
	"github.com/san-kum/photosim/internal/view"
	"github.com/san-kum/photosim/internal/viz"
)

const (
	sideWidth     = 38
	minCanvasCols = 30
	minCanvasRows = 12
	ivSamples     = 41
)

// Model is the Bubble Tea model. Key presses go to the controller, which
// pushes the new state through the view into the panels; the scene is only
// re-rasterised when the cathode panel reports itself dirty.
type Model struct {
	ctrl    controller.Communicator
	view    *view.View
	frame   *view.MainFrame
	theme   viz.Theme
	canvas  *viz.Canvas
	surface *viz.CanvasSurface
	initial photon.Inputs
	log     *slog.Logger

	scene   string
	redraws int
	iv      []float64

	width  int
	height int
}

// New connects a fresh main frame to ctrl. A nil logger uses slog.Default().
func New(ctrl *controller.Controller, theme viz.Theme, log *slog.Logger) (*Model, error) {
	if log == nil {
		log = slog.Default()
	}
	frame := view.NewMainFrame(theme.SceneStyle())
	open := func(controller.Communicator) (view.Frame, error) { return frame, nil }

	v, err := view.Connect(ctrl, open, log)
	if err != nil {
		return nil, err
	}

	m := &Model{
		ctrl:    ctrl,
		view:    v,
		frame:   frame,
		theme:   theme,
		initial: ctrl.Inputs(),
		log:     log,
		width:   80 + sideWidth,
		height:  28,
	}
	m.resize(m.width, m.height)
	m.refreshCurve()
	return m, nil
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	in := m.ctrl.Inputs()

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return tea.Quit
	case "left", "h":
		m.ctrl.ChangeWavelength(int(in.Wavelength) - 5)
	case "right", "l":
		m.ctrl.ChangeWavelength(int(in.Wavelength) + 5)
	case "[":
		m.ctrl.ChangeWavelength(int(in.Wavelength) - 1)
	case "]":
		m.ctrl.ChangeWavelength(int(in.Wavelength) + 1)
	case "up", "k":
		m.ctrl.ChangeIntensity(int(in.Intensity) + 5)
	case "down", "j":
		m.ctrl.ChangeIntensity(int(in.Intensity) - 5)
	case "+", "=":
		m.ctrl.ChangeVoltage(roundTenth(in.Voltage + 0.1))
	case "-", "_":
		m.ctrl.ChangeVoltage(roundTenth(in.Voltage - 0.1))
	case "0":
		m.ctrl.ChangeVoltage(0)
	case "m":
		m.cycleMetal(1)
	case "M":
		m.cycleMetal(-1)
	case "t":
		m.theme = m.theme.Next()
		m.frame.CathodePanel().SetStyle(m.theme.SceneStyle())
		m.surface = viz.NewCanvasSurface(m.canvas, m.theme)
	case "r":
		m.reset()
	default:
		return nil
	}

	m.refreshCurve()
	return nil
}

func (m *Model) cycleMetal(dir int) {
	metals := photon.Metals()
	cur := m.ctrl.Inputs().Metal
	idx := 0
	for i, info := range metals {
		if info.Metal == cur {
			idx = i
			break
		}
	}
	next := metals[(idx+dir+len(metals))%len(metals)]
	if err := m.ctrl.ChangeElement(next.Name); err != nil {
		m.log.Error("change element", "metal", next.Name, "err", err)
	}
}

func (m *Model) reset() {
	if err := m.ctrl.ChangeElement(m.initial.Metal.String()); err != nil {
		m.log.Error("reset element", "err", err)
	}
	m.ctrl.ChangeWavelength(int(m.initial.Wavelength))
	m.ctrl.ChangeIntensity(int(m.initial.Intensity))
	m.ctrl.ChangeVoltage(m.initial.Voltage)
}

// refreshCurve samples the current-voltage characteristic at the present
// metal, wavelength and intensity.
func (m *Model) refreshCurve() {
	points, err := automation.RunSweep(context.Background(), automation.Sweep{
		Base:  m.ctrl.Inputs(),
		Param: automation.SweepVoltage,
		Min:   controller.MinVoltage,
		Max:   controller.MaxVoltage,
		Steps: ivSamples,
	})
	if err != nil {
		m.log.Warn("i-v curve", "err", err)
		m.iv = nil
		return
	}
	m.iv = automation.Currents(points)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	cols := w - sideWidth - 4
	if cols < minCanvasCols {
		cols = minCanvasCols
	}
	rows := h - 4
	if rows < minCanvasRows {
		rows = minCanvasRows
	}
	// keep the 500x470 layout roughly square on screen: braille cells
	// are 2x4 dots and terminal cells about twice as tall as wide
	if cols > rows*2 {
		cols = rows * 2
	} else {
		rows = cols / 2
	}
	if m.canvas != nil && m.canvas.Width == cols && m.canvas.Height == rows {
		return
	}
	m.canvas = viz.NewCanvas(cols, rows)
	m.surface = viz.NewCanvasSurface(m.canvas, m.theme)
	m.frame.CathodePanel().Invalidate()
}

// Redraws reports how many times the scene has been rasterised.
func (m *Model) Redraws() int { return m.redraws }

func (m *Model) View() string {
	if m.frame.CathodePanel().Render(m.surface) {
		m.scene = m.canvas.Render()
		m.redraws++
	}

	left := viz.GlassPanel.
		BorderForeground(m.theme.Muted).
		Render(m.scene)
	right := m.sidePanel()

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m *Model) sidePanel() string {
	in := m.ctrl.Inputs()
	var b strings.Builder

	title := viz.Title.Foreground(m.theme.Primary)
	b.WriteString(title.Render("photosim") + "  " + viz.Subtle.Render(m.theme.Name) + "\n")
	b.WriteString(viz.Separator(sideWidth-4) + "\n")

	for _, r := range m.frame.InfoPanel().Readouts() {
		b.WriteString(readout(r) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(viz.MetricLabel.Render("wavelength") + viz.MetricValue.Render(fmt.Sprintf("%.0f nm", in.Wavelength)) + "\n")
	b.WriteString(viz.SpectrumBar(controller.MinWavelength, controller.MaxWavelength, in.Wavelength, sideWidth-6) + "\n")
	b.WriteString(viz.MetricLabel.Render("intensity") + viz.MetricValue.Render(fmt.Sprintf("%.0f %%", in.Intensity)) + "\n")
	b.WriteString(viz.ProgressBar(in.Intensity/controller.MaxIntensity, sideWidth-6) + "\n")
	b.WriteString(viz.MetricLabel.Render("voltage") + viz.MetricValue.Render(fmt.Sprintf("%+.1f V", in.Voltage)) + "\n")
	span := controller.MaxVoltage - controller.MinVoltage
	b.WriteString(viz.ProgressBar((in.Voltage-controller.MinVoltage)/span, sideWidth-6) + "\n\n")

	for _, r := range m.frame.OutcomePanel().Readouts() {
		b.WriteString(readout(r) + "\n")
	}
	status := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("○ no emission")
	if m.ctrl.Outcome().Emitting() {
		status = lipgloss.NewStyle().Foreground(m.theme.Success).Render("● emitting")
	}
	b.WriteString(status + "\n\n")

	b.WriteString(viz.Subtle.Render("I-V  -10V .. +10V") + "\n")
	b.WriteString(viz.SparklineChart(m.iv, sideWidth-6) + "\n\n")

	b.WriteString(viz.KeyHint.Render("←→ λ  [] fine  ↑↓ intensity") + "\n")
	b.WriteString(viz.KeyHint.Render("+- voltage  0 zero  m/M metal") + "\n")
	b.WriteString(viz.KeyHint.Render("t theme  r reset  q quit"))

	return viz.GlassPanel.Width(sideWidth).Render(b.String())
}

func readout(r view.Readout) string {
	return viz.MetricLabel.Render(r.Label) + viz.MetricValue.Render(r.Value)
}

func roundTenth(v float64) float64 {
	if v < 0 {
		return -float64(int(-v*10+0.5)) / 10
	}
	return float64(int(v*10+0.5)) / 10
}

// Run starts the program on the alternate screen and blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
