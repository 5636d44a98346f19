package tractgo

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBundle is returned when a bundle contains no streamlines.
	ErrEmptyBundle = errors.New("bundle must contain at least one streamline")

	// ErrBadDestination is returned by DistanceMatrixInto when the
	// destination matrix dimensions do not match the bundle sizes.
	ErrBadDestination = errors.New("destination matrix has wrong dimensions")
)

// ErrShapeMismatch indicates that the two bundles disagree on points per
// streamline, which the MDF metric cannot handle.
type ErrShapeMismatch struct {
	Static int
	Moving int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("shape mismatch: static bundle has %d points per streamline, moving has %d", e.Static, e.Moving)
}

// ErrInvalidPointLayout indicates a coordinate buffer whose length is not a
// positive multiple of 3.
type ErrInvalidPointLayout struct {
	Len int
}

func (e *ErrInvalidPointLayout) Error() string {
	return fmt.Sprintf("invalid point layout: %d values is not a positive multiple of 3", e.Len)
}
