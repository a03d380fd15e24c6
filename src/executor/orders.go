package executor

import (
	"slices"

	"fleetvator/src/elev"
	"fleetvator/src/types"
	"fleetvator/src/utils"
)

// Leg is an ordered list of floors to serve while travelling in one direction.
type Leg struct {
	Dir    types.Direction
	Floors []int
}

// ChooseLeg picks the next leg of the scan.
//  1. Idle or moving up: pending floors above, ascending. If none, every pending floor heading down.
//  2. Moving down: pending floors below, descending. If none, every pending floor heading up.
//
// The reversal leg is ordered in its own travel direction, so each target is reached
// without turning around.
func ChooseLeg(elevator elev.ElevState) Leg {
	switch elevator.Motion {
	case types.MovingDown:
		if below := utils.FloorsBelow(elevator.Pending, elevator.Floor); len(below) > 0 {
			return Leg{Dir: types.Down, Floors: below}
		}
		return Leg{Dir: types.Up, Floors: utils.SortedFloors(elevator.Pending)}
	default:
		if above := utils.FloorsAbove(elevator.Pending, elevator.Floor); len(above) > 0 {
			return Leg{Dir: types.Up, Floors: above}
		}
		all := utils.SortedFloors(elevator.Pending)
		slices.Reverse(all)
		return Leg{Dir: types.Down, Floors: all}
	}
}

// ordersAhead reports whether any pending floor lies beyond the current floor in dir.
func ordersAhead(elevator *elev.ElevState, dir types.Direction) bool {
	for floor, active := range elevator.Pending {
		if !active {
			continue
		}
		if (dir == types.Up && floor > elevator.Floor) || (dir == types.Down && floor < elevator.Floor) {
			return true
		}
	}
	return false
}
