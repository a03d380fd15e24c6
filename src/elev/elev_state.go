package elev

import (
	"github.com/tiendc/go-deepcopy"

	"fleetvator/src/types"
	"fleetvator/src/utils"
)

// NewElevStateMgr creates an idle elevator standing at floor with nothing pending.
func NewElevStateMgr(id, floor int) *ElevStateMgr {
	return &ElevStateMgr{
		state: ElevState{
			ID:      id,
			Floor:   floor,
			Motion:  types.Idle,
			Pending: make(map[int]bool),
		},
	}
}

func (elevMgr *ElevStateMgr) ID() int {
	return elevMgr.state.ID // immutable after construction
}

// Exec runs fn with exclusive access to the live state. fn must not block.
func (elevMgr *ElevStateMgr) Exec(fn func(elevator *ElevState)) {
	elevMgr.mu.Lock()
	defer elevMgr.mu.Unlock()
	fn(&elevMgr.state)
}

// GetState returns a deep copy of the elevator state.
func (elevMgr *ElevStateMgr) GetState() ElevState {
	var clone ElevState
	elevMgr.Exec(func(elevator *ElevState) {
		if err := deepcopy.Copy(&clone, elevator); err != nil {
			panic(err)
		}
	})
	if clone.Pending == nil {
		clone.Pending = make(map[int]bool)
	}
	return clone
}

// AddPending inserts floor and reports whether it was newly added.
func (elevMgr *ElevStateMgr) AddPending(floor int) (added bool) {
	elevMgr.Exec(func(elevator *ElevState) {
		if !elevator.Pending[floor] {
			elevator.Pending[floor] = true
			added = true
		}
	})
	return added
}

// RemovePending deletes floor and reports whether it was present.
func (elevMgr *ElevStateMgr) RemovePending(floor int) (removed bool) {
	elevMgr.Exec(func(elevator *ElevState) {
		removed = elevator.Pending[floor]
		delete(elevator.Pending, floor)
	})
	return removed
}

func (elevMgr *ElevStateMgr) SetFloor(floor int) {
	elevMgr.Exec(func(elevator *ElevState) {
		elevator.Floor = floor
	})
}

// SetMotion updates the motion state and reports whether it changed.
func (elevMgr *ElevStateMgr) SetMotion(motion types.Motion) (changed bool) {
	elevMgr.Exec(func(elevator *ElevState) {
		changed = elevator.Motion != motion
		elevator.Motion = motion
	})
	return changed
}

// Status converts the state into a status row.
func (elevator ElevState) Status() types.ElevatorStatus {
	return types.ElevatorStatus{
		ID:      elevator.ID,
		Floor:   elevator.Floor,
		Motion:  elevator.Motion,
		Pending: utils.SortedFloors(elevator.Pending),
	}
}
