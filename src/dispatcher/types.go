package dispatcher

import (
	"fleetvator/src/types"
)

// Assignment is the outcome of a successful AddRequest.
type Assignment struct {
	RequestID string
	Request   types.HallRequest
	Elevator  int  // ID of the chosen elevator
	Duplicate bool // floor was already pending on that elevator
}

// Cost ranks candidate elevators. Lower is better, compared field by field.
type Cost struct {
	Distance        int // |elevator floor - requested floor|
	PendingDistance int // closest pending floor to the requested floor, 0 if none
}

func (c Cost) Less(other Cost) bool {
	if c.Distance != other.Distance {
		return c.Distance < other.Distance
	}
	return c.PendingDistance < other.PendingDistance
}
