package orchestrator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"fleetvator/src/config"
	"fleetvator/src/dispatcher"
	"fleetvator/src/elev"
	"fleetvator/src/executor"
	"fleetvator/src/timer"
	"fleetvator/src/types"
)

// Orchestrator owns the fleet, the dispatcher and one movement engine per elevator.
type Orchestrator struct {
	fleet      *elev.Fleet
	dispatcher *dispatcher.Dispatcher
	engines    []*executor.Engine
	log        zerolog.Logger
}

func New(settings config.ElevatorSettings, clock timer.Clock, log zerolog.Logger) (*Orchestrator, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid elevator settings: %w", err)
	}

	fleet := elev.InitFleet(settings.NumElevators, log)
	engines := make([]*executor.Engine, 0, fleet.Len())
	for _, elevMgr := range fleet.Elevators() {
		engines = append(engines, executor.NewEngine(elevMgr, settings, clock, log))
	}
	return &Orchestrator{
		fleet:      fleet,
		dispatcher: dispatcher.New(fleet, settings, log),
		engines:    engines,
		log:        log,
	}, nil
}

// Run starts every engine and blocks until ctx is cancelled and all engines have stopped.
func (o *Orchestrator) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, engine := range o.engines {
		g.Go(func() error {
			return engine.Run(ctx)
		})
	}
	o.log.Info().Int("elevators", len(o.engines)).Msg("Elevator system started")
	err := g.Wait()
	o.log.Info().Msg("Elevator system stopped")
	return err
}

func (o *Orchestrator) AddRequest(floor int, dir types.Direction) (dispatcher.Assignment, error) {
	return o.dispatcher.AddRequest(floor, dir)
}

// StatusSnapshot reports every elevator in fleet order.
func (o *Orchestrator) StatusSnapshot() []types.ElevatorStatus {
	return o.fleet.Snapshot()
}
