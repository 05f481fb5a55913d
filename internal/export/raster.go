package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/san-kum/photosim/internal/scene"
	"golang.org/x/image/vector"
)

// RasterSurface rasterises scene operations into an RGBA image with
// anti-aliasing.
type RasterSurface struct {
	img    *image.RGBA
	sx, sy float64
}

func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		sx:  float64(width) / scene.Width,
		sy:  float64(height) / scene.Height,
	}
}

func (r *RasterSurface) Image() *image.RGBA {
	return r.img
}

func (r *RasterSurface) Clear(bg color.NRGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (r *RasterSurface) StrokeLine(l scene.Line, width float64, c color.NRGBA) {
	r.FillPolygon(l.Quad(width), c)
}

func (r *RasterSurface) FillPolygon(p scene.Polygon, c color.NRGBA) {
	if len(p) < 3 || c.A == 0 {
		return
	}
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(p[0].X*r.sx), float32(p[0].Y*r.sy))
	for _, v := range p[1:] {
		z.LineTo(float32(v.X*r.sx), float32(v.Y*r.sy))
	}
	z.ClosePath()
	z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// WritePNG encodes the current image.
func (r *RasterSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, r.img)
}

// RenderPNG draws a frame and writes it as a PNG of the given size.
func RenderPNG(w io.Writer, f scene.Frame, st scene.Style, width, height int) error {
	r := NewRasterSurface(width, height)
	scene.DrawStyled(r, f, st)
	return r.WritePNG(w)
}
