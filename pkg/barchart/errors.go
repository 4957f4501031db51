package barchart

import "errors"

var (
	// ErrInsufficientSpace is returned by Render when a bar would be
	// narrower than one unit. Nothing is drawn.
	ErrInsufficientSpace = errors.New(`chart is too small for the amount of data provided`)
	ErrTargetNotFound    = errors.New(`chart target not found`)
	ErrInvalidDimensions = errors.New(`chart has no drawable area`)
)
