package photon

import "errors"

var (
	// ErrUnknownMetal indicates a metal name or symbol that is not in the table.
	ErrUnknownMetal = errors.New("photon: unknown metal")

	// ErrInvalidInput indicates a wavelength or intensity outside its domain.
	ErrInvalidInput = errors.New("photon: invalid input (NaN, Inf or out of range)")
)
