package dispatcher

import (
	"fleetvator/src/elev"
	"fleetvator/src/utils"
)

// costToServe ranks an elevator for a request at floor.
//   - primary key: distance from the elevator's current floor
//   - secondary key: distance from the nearest floor it is already committed to
func costToServe(elevator elev.ElevState, floor int) Cost {
	return Cost{
		Distance:        utils.Abs(elevator.Floor - floor),
		PendingDistance: utils.MinDistance(elevator.Pending, floor),
	}
}

// findAssignee returns the index of the cheapest elevator, or -1 for no candidates.
// Ties go to the earlier elevator in fleet order.
func findAssignee(elevators []elev.ElevState, floor int) int {
	assignee := -1
	var lowest Cost
	for i, elevator := range elevators {
		cost := costToServe(elevator, floor)
		if assignee == -1 || cost.Less(lowest) {
			assignee, lowest = i, cost
		}
	}
	return assignee
}
