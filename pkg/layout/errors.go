package layout

import "errors"

var (
	// ErrNotFound signals a referenced field or section id does not exist.
	ErrNotFound = errors.New("layout: not found")
	// ErrCrossSection is returned when a swap names fields from two
	// different sections.
	ErrCrossSection = errors.New("layout: fields belong to different sections")
)
