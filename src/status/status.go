package status

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"fleetvator/src/timer"
	"fleetvator/src/types"
)

const separator = "--------------------"

var printer = message.NewPrinter(language.English)

// Render draws one "Car N is on floor F" line per elevator between two separators.
func Render(snapshot []types.ElevatorStatus) string {
	var b strings.Builder
	b.WriteString(separator + "\n")
	for _, s := range snapshot {
		printer.Fprintf(&b, "Car %d is on floor %d\n", s.ID, s.Floor)
	}
	b.WriteString(separator)
	return b.String()
}

// Reporter logs the fleet status whenever the rendering differs from the last one logged.
type Reporter struct {
	source func() []types.ElevatorStatus
	log    zerolog.Logger
	last   string
}

func NewReporter(source func() []types.ElevatorStatus, log zerolog.Logger) *Reporter {
	return &Reporter{
		source: source,
		log:    log.With().Str("component", "status").Logger(),
	}
}

// Report logs the current status if it changed and reports whether it did.
func (r *Reporter) Report() bool {
	snapshot := r.source()
	rendered := Render(snapshot)
	if rendered == r.last {
		return false
	}
	r.last = rendered
	r.log.Info().Int("elevators", len(snapshot)).Msg("Elevator status\n" + rendered)
	return true
}

// Run reports every interval until ctx is done.
func (r *Reporter) Run(ctx context.Context, clk timer.Clock, interval time.Duration) {
	timer.Every(ctx, clk, interval, func() { r.Report() })
}
