package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/photosim/internal/scene"
)

// RaylibSurface issues scene draw operations as raylib immediate-mode calls.
// It must be used between BeginDrawing/EndDrawing or
// BeginTextureMode/EndTextureMode.
type RaylibSurface struct {
	Offset rl.Vector2
	Scale  float32
}

var _ scene.Surface = (*RaylibSurface)(nil)

func NewRaylibSurface(offset rl.Vector2, scale float32) *RaylibSurface {
	return &RaylibSurface{Offset: offset, Scale: scale}
}

func (s *RaylibSurface) Clear(bg color.NRGBA) {
	rl.ClearBackground(toColor(bg))
}

func (s *RaylibSurface) StrokeLine(l scene.Line, width float64, c color.NRGBA) {
	rl.DrawLineEx(s.project(l.From), s.project(l.To), float32(width)*s.Scale, toColor(c))
}

func (s *RaylibSurface) FillPolygon(p scene.Polygon, c color.NRGBA) {
	col := toColor(c)
	for _, tri := range fan(p) {
		rl.DrawTriangle(s.project(tri[0]), s.project(tri[1]), s.project(tri[2]), col)
	}
}

func (s *RaylibSurface) project(p scene.Point) rl.Vector2 {
	return rl.NewVector2(s.Offset.X+float32(p.X)*s.Scale, s.Offset.Y+float32(p.Y)*s.Scale)
}

// fan splits a convex polygon into triangles wound counter-clockwise on
// screen, the only winding DrawTriangle fills. With y pointing down that
// is a negative signed area.
func fan(p scene.Polygon) [][3]scene.Point {
	if len(p) < 3 {
		return nil
	}
	if p.SignedArea() > 0 {
		rev := make(scene.Polygon, len(p))
		for i, pt := range p {
			rev[len(p)-1-i] = pt
		}
		p = rev
	}
	tris := make([][3]scene.Point, 0, len(p)-2)
	for i := 1; i < len(p)-1; i++ {
		tris = append(tris, [3]scene.Point{p[0], p[i], p[i+1]})
	}
	return tris
}

func toColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
