package traffic

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"

	"fleetvator/src/config"
	"fleetvator/src/timer"
	"fleetvator/src/types"
)

// SubmitFunc hands a hall request to the fleet.
type SubmitFunc func(floor int, dir types.Direction) error

// Generator draws uniform hall requests over every floor and both directions. Draws the
// dispatcher refuses, such as any call on the bottom floor, are part of the load.
type Generator struct {
	numFloors int
	rng       *rand.Rand
	log       zerolog.Logger
}

func NewGenerator(numFloors int, src rand.Source, log zerolog.Logger) *Generator {
	return &Generator{
		numFloors: numFloors,
		rng:       rand.New(src),
		log:       log.With().Str("component", "traffic").Logger(),
	}
}

// NewSeededGenerator uses a random seed.
func NewSeededGenerator(numFloors int, log zerolog.Logger) *Generator {
	return NewGenerator(numFloors, rand.NewPCG(rand.Uint64(), rand.Uint64()), log)
}

// Next draws a floor in [1, numFloors] and a direction.
func (g *Generator) Next() types.HallRequest {
	floor := config.BottomFloor + g.rng.IntN(g.numFloors)
	dir := types.Up
	if g.rng.IntN(2) == 1 {
		dir = types.Down
	}
	return types.HallRequest{Floor: floor, Dir: dir}
}

// Run submits one request per interval until ctx is done.
func (g *Generator) Run(ctx context.Context, clk timer.Clock, interval time.Duration, submit SubmitFunc) {
	g.log.Info().Dur("interval", interval).Msg("Random requests enabled")
	for {
		if err := timer.Wait(ctx, clk, interval); err != nil {
			return
		}
		req := g.Next()
		g.log.Debug().Stringer("request", req).Msg("Generated request")
		if err := submit(req.Floor, req.Dir); err != nil && !errors.Is(err, types.ErrInvalidRequest) {
			g.log.Warn().Err(err).Stringer("request", req).Msg("Request was not assigned")
		}
	}
}
