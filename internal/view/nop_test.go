package view_test

import (
	"image/color"

	"github.com/san-kum/photosim/internal/scene"
)

type nopSurface struct{}

func (nopSurface) Clear(color.NRGBA) {}
func (nopSurface) StrokeLine(scene.Line, float64, color.NRGBA) {}
func (nopSurface) FillPolygon(scene.Polygon, color.NRGBA) {}
