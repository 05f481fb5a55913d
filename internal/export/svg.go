package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/photosim/internal/scene"
)

// SVGSurface accumulates drawing operations as SVG elements.
type SVGSurface struct {
	width, height int
	sb            strings.Builder
}

// NewSVGSurface creates a surface whose output is width×height pixels; the
// logical scene space is mapped onto it by the viewBox.
func NewSVGSurface(width, height int) *SVGSurface {
	s := &SVGSurface{width: width, height: height}
	s.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, width, height, scene.Width, scene.Height))
	return s
}

func (s *SVGSurface) Clear(bg color.NRGBA) {
	s.sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"%s/>
`, hex(bg), opacityAttr("fill-opacity", bg)))
}

func (s *SVGSurface) StrokeLine(l scene.Line, width float64, c color.NRGBA) {
	s.sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"%s/>
`, l.From.X, l.From.Y, l.To.X, l.To.Y, hex(c), width, opacityAttr("stroke-opacity", c)))
}

func (s *SVGSurface) FillPolygon(p scene.Polygon, c color.NRGBA) {
	pts := make([]string, len(p))
	for i, v := range p {
		pts[i] = fmt.Sprintf("%.1f,%.1f", v.X, v.Y)
	}
	s.sb.WriteString(fmt.Sprintf(`<polygon points="%s" fill="%s"%s/>
`, strings.Join(pts, " "), hex(c), opacityAttr("fill-opacity", c)))
}

// String closes the document and returns it. Further drawing is not allowed.
func (s *SVGSurface) String() string {
	return s.sb.String() + "</svg>"
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacityAttr(name string, c color.NRGBA) string {
	if c.A == 0xff {
		return ""
	}
	return fmt.Sprintf(` %s="%.3f"`, name, float64(c.A)/255)
}

// RenderSVG draws a frame into a standalone SVG document.
func RenderSVG(f scene.Frame, st scene.Style, width, height int) string {
	s := NewSVGSurface(width, height)
	scene.DrawStyled(s, f, st)
	return s.String()
}
