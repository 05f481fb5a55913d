package view

import "errors"

var (
	// ErrNoController indicates the main frame was opened before a controller was set.
	ErrNoController = errors.New("view: no controller set")

	// ErrNoFrame indicates an update arrived before the main frame was opened.
	ErrNoFrame = errors.New("view: main frame not initialized")
)
