// Package viz renders the photocell in a terminal.
//
//   - [Canvas]: braille pixel canvas with per-cell colour
//   - [CanvasSurface]: a scene.Surface drawing onto a Canvas
//   - Themes and lipgloss styles shared by the TUI
//
// The light beam is dithered: the share of lit dots follows the beam
// opacity and each cell takes the beam colour.
package viz
