package viz

import (
	"image/color"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/photosim/internal/scene"
	"github.com/san-kum/photosim/internal/spectrum"
)

const faintAlpha = 0.5

// 4x4 ordered dither thresholds
var bayer = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// CanvasSurface draws scene operations onto a braille canvas. Strokes use
// the theme foreground; fills are dithered so that dot density follows
// opacity, and take the fill colour.
type CanvasSurface struct {
	canvas *Canvas
	theme  Theme
	sx, sy float64
}

func NewCanvasSurface(c *Canvas, theme Theme) *CanvasSurface {
	return &CanvasSurface{
		canvas: c,
		theme:  theme,
		sx:     float64(c.SubWidth()) / scene.Width,
		sy:     float64(c.SubHeight()) / scene.Height,
	}
}

func (s *CanvasSurface) Canvas() *Canvas { return s.canvas }

func (s *CanvasSurface) Clear(color.NRGBA) {
	s.canvas.Clear()
}

func (s *CanvasSurface) StrokeLine(l scene.Line, width float64, c color.NRGBA) {
	if c.A < 0x80 {
		return
	}
	// thin strokes fall between dots, draw them as a single line
	if width*math.Min(s.sx, s.sy) < 1.5 {
		s.canvas.DrawLine(
			int(l.From.X*s.sx), int(l.From.Y*s.sy),
			int(l.To.X*s.sx), int(l.To.Y*s.sy),
			s.theme.Text,
		)
		return
	}
	s.fill(l.Quad(width), 1, s.theme.Text)
}

func (s *CanvasSurface) FillPolygon(p scene.Polygon, c color.NRGBA) {
	alpha := float64(c.A) / 255
	s.fill(p, alpha, s.cellColor(c, alpha))
}

// cellColor picks the terminal colour of a fill. Faint fills also fade
// toward the theme background.
func (s *CanvasSurface) cellColor(c color.NRGBA, alpha float64) lipgloss.Color {
	if int(c.R)+int(c.G)+int(c.B) < 30 {
		return s.theme.Muted
	}
	rgb := spectrum.RGB{R: c.R, G: c.G, B: c.B}
	if alpha < faintAlpha {
		bg := nrgba(s.theme.Background)
		rgb = rgb.Blend(spectrum.RGB{R: bg.R, G: bg.G, B: bg.B}, 0.5+alpha)
	}
	return lipgloss.Color(rgb.Hex())
}

// fill sets every dot whose centre lies in p and whose dither threshold is
// below density. density 1 fills solid.
func (s *CanvasSurface) fill(p scene.Polygon, density float64, col lipgloss.Color) {
	if density <= 0 || len(p) < 3 {
		return
	}
	min, max := p.Bounds()
	x0, x1 := int(math.Floor(min.X*s.sx)), int(math.Ceil(max.X*s.sx))
	y0, y1 := int(math.Floor(min.Y*s.sy)), int(math.Ceil(max.Y*s.sy))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if density < 1 && (bayer[absInt(y)%4][absInt(x)%4]+0.5)/16 > density {
				continue
			}
			pt := scene.Point{X: (float64(x) + 0.5) / s.sx, Y: (float64(y) + 0.5) / s.sy}
			if p.Contains(pt) {
				s.canvas.SetColored(x, y, col)
			}
		}
	}
}
