// Package view is the façade between the controller and the panels of the
// main window.
//
// [View] implements [controller.Display]: every value the controller pushes
// is forwarded to the text panels and to the drawing panel, which stays a
// passive consumer of precomputed results. The concrete window (terminal or
// raylib) is supplied through a [FrameOpener].
package view
