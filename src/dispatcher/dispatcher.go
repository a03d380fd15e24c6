package dispatcher

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"fleetvator/src/config"
	"fleetvator/src/elev"
	"fleetvator/src/types"
)

// Dispatcher assigns hall requests to elevators in the fleet. It never blocks on time.
type Dispatcher struct {
	mu        sync.Mutex // one assignment at a time
	fleet     *elev.Fleet
	numFloors int
	log       zerolog.Logger
}

func New(fleet *elev.Fleet, settings config.ElevatorSettings, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		fleet:     fleet,
		numFloors: settings.NumFloors,
		log:       log.With().Str("component", "dispatcher").Logger(),
	}
}

// AddRequest validates a hall request and commits it to the nearest elevator.
//   - invalid requests are logged and returned as types.ErrInvalidRequest, nothing changes
//   - a floor already pending on the chosen elevator is a no-op (Assignment.Duplicate)
func (d *Dispatcher) AddRequest(floor int, dir types.Direction) (Assignment, error) {
	req := types.HallRequest{Floor: floor, Dir: dir}
	if err := d.validate(req); err != nil {
		d.log.Info().Stringer("request", req).Msg("Ignoring invalid request")
		return Assignment{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	elevators := d.fleet.Elevators()
	if len(elevators) == 0 {
		d.log.Error().Stringer("request", req).Msg("No elevators are available in the system")
		return Assignment{}, fmt.Errorf("%w: request %s", types.ErrNoElevatorsAvailable, req)
	}

	states := make([]elev.ElevState, len(elevators))
	for i, elevMgr := range elevators {
		states[i] = elevMgr.GetState()
	}
	assignee := findAssignee(states, floor)
	if assignee < 0 || assignee >= len(elevators) {
		d.log.Error().Stringer("request", req).Int("elevators", len(elevators)).Msg("Failed to find the nearest elevator")
		return Assignment{}, fmt.Errorf("%w: no candidate for %s among %d elevators", types.ErrAssignmentFailure, req, len(elevators))
	}

	target := elevators[assignee]
	assignment := Assignment{
		RequestID: uuid.NewString(),
		Request:   req,
		Elevator:  target.ID(),
	}
	if !target.AddPending(floor) {
		assignment.Duplicate = true
		d.log.Debug().Str("id", assignment.RequestID).Stringer("request", req).Int("car", assignment.Elevator).
			Msg("Floor already pending")
		return assignment, nil
	}
	d.log.Info().Str("id", assignment.RequestID).Stringer("request", req).Int("car", assignment.Elevator).
		Int("carFloor", states[assignee].Floor).Msg("Request received")
	return assignment, nil
}

// validate applies the landing rules: no calls accepted at the bottom floor,
// and no UP call at the top floor. Floors outside the building are rejected too.
func (d *Dispatcher) validate(req types.HallRequest) error {
	switch {
	case !req.Dir.Valid():
		return fmt.Errorf("%w: unknown direction %d", types.ErrInvalidRequest, int(req.Dir))
	case req.Floor < config.BottomFloor || req.Floor > d.numFloors:
		return fmt.Errorf("%w: floor %d outside [%d, %d]", types.ErrInvalidRequest, req.Floor, config.BottomFloor, d.numFloors)
	case req.Floor == config.BottomFloor:
		return fmt.Errorf("%w: %s request on bottom floor", types.ErrInvalidRequest, req.Dir)
	case req.Floor == d.numFloors && req.Dir == types.Up:
		return fmt.Errorf("%w: up request on top floor %d", types.ErrInvalidRequest, req.Floor)
	}
	return nil
}
