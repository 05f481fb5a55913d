package export

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/san-kum/photosim/internal/scene"
	"github.com/san-kum/photosim/internal/spectrum"
)

func TestRenderSVG(t *testing.T) {
	svg := RenderSVG(scene.Frame{Wavelength: 650, Intensity: 100, Voltage: 1}, scene.LightStyle, 500, 470)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	if !strings.Contains(svg, `viewBox="0 0 500 470"`) {
		t.Error("missing logical viewBox")
	}
	if got := strings.Count(svg, "<polygon"); got != 1 {
		t.Errorf("expected one beam polygon, got %d", got)
	}
	beam := spectrum.WavelengthToRGB(650).Hex()
	if !strings.Contains(svg, `fill="`+beam+`" fill-opacity="0.651"`) {
		t.Errorf("beam fill %s with opacity not found in\n%s", beam, svg)
	}
	if !strings.Contains(svg, `x1="10.0" y1="90.0" x2="30.0" y2="90.0"`) {
		t.Error("polarity glyph missing for positive voltage")
	}
}

func TestRenderSVG_NoBeamWhenDark(t *testing.T) {
	svg := RenderSVG(scene.Frame{Wavelength: 500}, scene.LightStyle, 250, 235)
	if strings.Contains(svg, "<polygon") {
		t.Error("beam drawn at zero intensity")
	}
	if !strings.Contains(svg, `width="250" height="235"`) {
		t.Error("output size not applied")
	}
}

func TestRasterSurface(t *testing.T) {
	r := NewRasterSurface(scene.Width, scene.Height)
	scene.Draw(r, scene.Frame{Wavelength: 650, Intensity: 100})
	img := r.Image()

	bg := img.RGBAAt(450, 100)
	if bg.R != 0xee || bg.G != 0xee || bg.B != 0xee {
		t.Errorf("background pixel = %+v", bg)
	}

	plate := img.RGBAAt(130, 300)
	if plate.R != 0 || plate.G != 0 || plate.B != 0 {
		t.Errorf("cathode pixel = %+v, want black", plate)
	}

	beam := img.RGBAAt(160, 230)
	if int(beam.R) < int(beam.G)+100 {
		t.Errorf("beam pixel = %+v, expected a red tint", beam)
	}
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderPNG(&buf, scene.Frame{Wavelength: 450, Intensity: 60}, scene.DarkStyle, 200, 188); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 188 {
		t.Errorf("size = %v", b)
	}
}
