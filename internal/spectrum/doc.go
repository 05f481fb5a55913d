// Package spectrum maps light parameters onto displayable colour.
//
// Two pure functions cover the visual encoding of a light beam:
//
//   - [WavelengthToRGB]: approximate perceived colour of monochromatic light
//   - [BeamOpacity]: opacity of the rendered beam for a given slider intensity
//
// Wavelengths are in nanometres. Bands are half-open, [a,b). Light outside
// the visible range degrades to dim colours instead of failing.
package spectrum
