package scene

import "math"

type Point struct {
	X, Y float64
}

type Line struct {
	From, To Point
}

// Length returns the euclidean length of the segment.
func (l Line) Length() float64 {
	return math.Hypot(l.To.X-l.From.X, l.To.Y-l.From.Y)
}

// Quad returns the four corners of the segment thickened to width, in
// drawing order. A zero-length segment yields a width×width square.
func (l Line) Quad(width float64) Polygon {
	dx, dy := l.To.X-l.From.X, l.To.Y-l.From.Y
	length := math.Hypot(dx, dy)
	h := width / 2
	if length == 0 {
		c := l.From
		return Polygon{{c.X - h, c.Y - h}, {c.X + h, c.Y - h}, {c.X + h, c.Y + h}, {c.X - h, c.Y + h}}
	}
	nx, ny := -dy/length*h, dx/length*h
	return Polygon{
		{l.From.X + nx, l.From.Y + ny},
		{l.To.X + nx, l.To.Y + ny},
		{l.To.X - nx, l.To.Y - ny},
		{l.From.X - nx, l.From.Y - ny},
	}
}

// Polygon is a closed polygon; the last vertex connects back to the first.
type Polygon []Point

// Edges returns the polygon outline as line segments.
func (p Polygon) Edges() []Line {
	if len(p) < 2 {
		return nil
	}
	edges := make([]Line, len(p))
	for i := range p {
		edges[i] = Line{From: p[i], To: p[(i+1)%len(p)]}
	}
	return edges
}

// SignedArea is positive for counter-clockwise vertices in a y-up frame,
// which is clockwise on screen.
func (p Polygon) SignedArea() float64 {
	var a float64
	for i := range p {
		j := (i + 1) % len(p)
		a += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return a / 2
}

// Bounds returns the axis-aligned bounding box.
func (p Polygon) Bounds() (min, max Point) {
	if len(p) == 0 {
		return
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return
}

// Contains reports whether pt lies inside the polygon (even-odd rule).
func (p Polygon) Contains(pt Point) bool {
	inside := false
	for i, j := 0, len(p)-1; i < len(p); j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// Scale maps the polygon by independent x and y factors.
func (p Polygon) Scale(sx, sy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{v.X * sx, v.Y * sy}
	}
	return out
}
