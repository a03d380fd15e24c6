package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"fleetvator/src/config"
	"fleetvator/src/elev"
	"fleetvator/src/timer"
	"fleetvator/src/types"
)

// Engine drives one elevator through the scan cycle. Exactly one Engine owns an elevator.
type Engine struct {
	elevMgr   *elev.ElevStateMgr
	settings  config.ElevatorSettings
	clock     timer.Clock
	log       zerolog.Logger
	lastFloor int
}

func NewEngine(elevMgr *elev.ElevStateMgr, settings config.ElevatorSettings, clock timer.Clock, log zerolog.Logger) *Engine {
	return &Engine{
		elevMgr:   elevMgr,
		settings:  settings,
		clock:     clock,
		log:       log.With().Int("car", elevMgr.ID()).Logger(),
		lastFloor: -1,
	}
}

// Run serves pending floors until ctx is cancelled. Errors inside an iteration are
// logged and the loop carries on with the next one.
func (e *Engine) Run(ctx context.Context) error {
	e.log.Debug().Msg("Movement loop started")
	for {
		err := e.iterate(ctx)
		if ctx.Err() != nil {
			e.log.Debug().Msg("Movement loop stopped")
			return nil
		}
		if err != nil {
			e.log.Error().Err(err).Msg("Error processing elevator requests")
		}
	}
}

// iterate runs one check of the loop: poll when there is nothing to do, otherwise serve one leg.
func (e *Engine) iterate(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered from panic: %v", r)
		}
	}()

	elevator := e.elevMgr.GetState()
	e.logFloor(elevator.Floor)

	if len(elevator.Pending) == 0 {
		return timer.Wait(ctx, e.clock, e.settings.PollInterval)
	}
	return e.serviceLeg(ctx, elevator.Floor, ChooseLeg(elevator))
}

// serviceLeg visits every floor of leg in order, then settles the motion state.
func (e *Engine) serviceLeg(ctx context.Context, floor int, leg Leg) error {
	for _, target := range leg.Floors {
		var err error
		floor, err = e.moveToFloor(ctx, floor, target, leg.Dir)
		if errors.Is(err, types.ErrOutOfBoundsMovement) {
			// An unreachable floor would be chosen again on every leg.
			e.elevMgr.RemovePending(target)
			e.log.Error().Int("target", target).Msg("Dropping unreachable floor")
			e.settleMotion(leg.Dir)
			return err
		}
		if err != nil {
			return err
		}
		if err := e.stopAt(ctx, floor); err != nil {
			return err
		}
	}
	e.settleMotion(leg.Dir)
	return nil
}

// moveToFloor steps one floor at a time from floor towards target in dir.
func (e *Engine) moveToFloor(ctx context.Context, floor, target int, dir types.Direction) (int, error) {
	for floor != target {
		next := floor + dir.Step()
		if next < config.BottomFloor || next > e.settings.NumFloors {
			return floor, fmt.Errorf("%w: cannot move %s from floor %d towards %d (floors %d-%d)",
				types.ErrOutOfBoundsMovement, dir, floor, target, config.BottomFloor, e.settings.NumFloors)
		}

		var started bool
		e.elevMgr.Exec(func(elevator *elev.ElevState) {
			started = elevator.Motion != dir.Motion()
			elevator.Motion = dir.Motion()
			elevator.Floor = next
		})
		if started {
			e.log.Info().Stringer("dir", dir).Msg("Starting to move")
		}
		floor = next
		e.log.Debug().Int("floor", floor).Msg("Passing floor")

		if err := timer.Wait(ctx, e.clock, e.settings.MoveDuration); err != nil {
			return floor, err
		}
	}
	return floor, nil
}

// stopAt serves floor: the car stops, the floor leaves the pending set, and the doors
// stay open for the dwell time. A request for this floor made after the removal is kept.
func (e *Engine) stopAt(ctx context.Context, floor int) error {
	var stopped bool
	e.elevMgr.Exec(func(elevator *elev.ElevState) {
		stopped = elevator.Motion != types.Idle
		elevator.Motion = types.Idle
		delete(elevator.Pending, floor)
	})
	if stopped {
		e.log.Debug().Int("floor", floor).Msg("Stopping")
	}
	e.logFloor(floor)
	e.log.Info().Int("floor", floor).Msg("Stopped for passengers to enter/leave")
	return timer.Wait(ctx, e.clock, e.settings.DwellDuration)
}

// settleMotion keeps the leg direction while there is work ahead in it, otherwise goes idle.
func (e *Engine) settleMotion(dir types.Direction) {
	e.elevMgr.Exec(func(elevator *elev.ElevState) {
		if ordersAhead(elevator, dir) {
			elevator.Motion = dir.Motion()
		} else {
			elevator.Motion = types.Idle
		}
	})
}

func (e *Engine) logFloor(floor int) {
	if floor != e.lastFloor {
		e.log.Info().Int("floor", floor).Msg("Car is on floor")
		e.lastFloor = floor
	}
}
