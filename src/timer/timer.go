package timer

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock is the time source for every wait in the simulator. Tests drive a fake one.
type Clock = clockwork.Clock

func NewRealClock() Clock {
	return clockwork.NewRealClock()
}

// Wait blocks for d on clk. It returns ctx.Err() if the context ends first.
func Wait(ctx context.Context, clk Clock, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-clk.After(d):
		return nil
	}
}

// Every calls fn immediately and then once per interval until ctx is done.
func Every(ctx context.Context, clk Clock, interval time.Duration, fn func()) {
	for {
		fn()
		if err := Wait(ctx, clk, interval); err != nil {
			return
		}
	}
}
