package types

import "errors"

// Error kinds. Call sites wrap these with context, match with errors.Is.
var (
	// ErrInvalidRequest is returned for requests rejected by floor/direction validation.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrNoElevatorsAvailable is returned when the fleet is empty.
	ErrNoElevatorsAvailable = errors.New("no elevators available")
	// ErrAssignmentFailure means selection produced no candidate for a non-empty fleet.
	ErrAssignmentFailure = errors.New("assignment failure")
	// ErrOutOfBoundsMovement is returned when a step would leave [1, NumFloors].
	ErrOutOfBoundsMovement = errors.New("out of bounds movement")
)
