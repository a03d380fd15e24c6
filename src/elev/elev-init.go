package elev

import (
	"github.com/rs/zerolog"

	"fleetvator/src/config"
	"fleetvator/src/types"
)

// InitFleet creates numElevators elevators at the bottom floor, IDs 1..n in fleet order.
func InitFleet(numElevators int, log zerolog.Logger) *Fleet {
	elevators := make([]*ElevStateMgr, 0, numElevators)
	for i := range numElevators {
		elevMgr := NewElevStateMgr(i+1, config.BottomFloor)
		elevators = append(elevators, elevMgr)
		log.Info().Int("car", elevMgr.ID()).Int("floor", config.BottomFloor).Msg("Elevator initialized")
	}
	log.Info().Int("elevators", numElevators).Msg("Elevator system initialized")
	return NewFleet(elevators...)
}

// NewFleet builds a fleet from existing elevators, keeping their order.
func NewFleet(elevators ...*ElevStateMgr) *Fleet {
	return &Fleet{elevators: elevators}
}

func (f *Fleet) Len() int {
	return len(f.elevators)
}

// Elevators returns the elevators in fleet order. The slice is a copy; the managers are shared.
func (f *Fleet) Elevators() []*ElevStateMgr {
	out := make([]*ElevStateMgr, len(f.elevators))
	copy(out, f.elevators)
	return out
}

// Snapshot reads every elevator in fleet order.
func (f *Fleet) Snapshot() []types.ElevatorStatus {
	snapshot := make([]types.ElevatorStatus, 0, len(f.elevators))
	for _, elevMgr := range f.elevators {
		snapshot = append(snapshot, elevMgr.GetState().Status())
	}
	return snapshot
}
