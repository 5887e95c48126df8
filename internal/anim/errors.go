package anim

import "errors"

var (
	// ErrUnknownMode indicates a mode name other than associative/dissociative.
	ErrUnknownMode = errors.New("anim: unknown mode")

	// ErrNoSurface indicates the engine was built without a drawing surface.
	ErrNoSurface = errors.New("anim: no drawing surface")
)
