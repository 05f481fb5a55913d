package scene

// Logical size of the drawing area.
const (
	Width  = 500
	Height = 470
)

const (
	plateStroke = 10
	glyphStroke = 8
	beamStroke  = 1
)

var (
	Cathode     = Line{Point{130, 40}, Point{130, 430}}
	Anode       = Line{Point{370, 40}, Point{370, 430}}
	CathodeWire = Line{Point{15, 230}, Point{130, 230}}
	AnodeWire   = Line{Point{370, 230}, Point{480, 230}}

	// Beam is the light cone falling onto the cathode from the upper right.
	Beam = Polygon{{135, 37}, {135, 435}, {270, 5}}

	minusBar = Line{Point{10, 90}, Point{30, 90}}
	plusBar  = Line{Point{20, 80}, Point{20, 100}}
)
