// Package scene draws the schematic photocell: cathode and anode plates,
// their wires, the incoming light beam and the polarity glyph.
//
// Drawing is backend agnostic. [Draw] emits operations to a [Surface];
// the export, viz and gui packages provide SVG, raster, terminal and raylib
// surfaces. All coordinates live in a fixed [Width]×[Height] logical space.
//
// [Panel] keeps the three render inputs together with the readouts pushed
// by the controller, and redraws only after one of them changed.
package scene
