package executor

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"fleetvator/src/config"
	"fleetvator/src/elev"
	"fleetvator/src/types"
)

const (
	tick      = time.Second
	testFloor = 10
	maxTicks  = 500
)

// syncBuffer lets the engine goroutine log while the test reads.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type harness struct {
	t       *testing.T
	clk     clockwork.FakeClock
	elevMgr *elev.ElevStateMgr
	logs    *syncBuffer
	cancel  context.CancelFunc
	done    chan error
	once    sync.Once
	result  error

	prev   map[int]bool
	served []int
}

func testSettings() config.ElevatorSettings {
	return config.ElevatorSettings{
		NumElevators:  1,
		NumFloors:     testFloor,
		MoveDuration:  tick,
		DwellDuration: tick,
		PollInterval:  tick,
	}
}

func startEngine(t *testing.T, floor int, motion types.Motion, pending ...int) *harness {
	t.Helper()
	elevMgr := elev.NewElevStateMgr(1, floor)
	prev := make(map[int]bool)
	elevMgr.Exec(func(elevator *elev.ElevState) {
		elevator.Motion = motion
		for _, f := range pending {
			elevator.Pending[f] = true
			prev[f] = true
		}
	})

	h := &harness{
		t:       t,
		clk:     clockwork.NewFakeClock(),
		elevMgr: elevMgr,
		logs:    &syncBuffer{},
		done:    make(chan error, 1),
		prev:    prev,
	}
	engine := NewEngine(elevMgr, testSettings(), h.clk, zerolog.New(h.logs).Level(zerolog.DebugLevel))
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- engine.Run(ctx) }()
	t.Cleanup(func() { h.stop() })
	return h
}

func (h *harness) stop() error {
	h.once.Do(func() {
		h.cancel()
		h.result = <-h.done
	})
	return h.result
}

// add inserts a floor while the engine is parked on a wait.
func (h *harness) add(floor int) {
	h.elevMgr.AddPending(floor)
	h.prev[floor] = true
}

// runUntil advances the fake clock one tick at a time. Every check happens while the
// engine is parked on its next wait, so the state it sees is settled.
func (h *harness) runUntil(cond func(elev.ElevState) bool) elev.ElevState {
	h.t.Helper()
	for range maxTicks {
		h.clk.BlockUntil(1)
		s := h.elevMgr.GetState()
		h.observe(s)
		if cond(s) {
			return s
		}
		h.clk.Advance(tick)
	}
	h.t.Fatalf("Condition not reached after %d ticks, state %+v", maxTicks, h.elevMgr.GetState())
	return elev.ElevState{}
}

func (h *harness) observe(s elev.ElevState) {
	if s.Floor < config.BottomFloor || s.Floor > testFloor {
		h.t.Errorf("Floor %d outside [1, %d]", s.Floor, testFloor)
	}
	var gone []int
	for f := range h.prev {
		if !s.Pending[f] {
			gone = append(gone, f)
			delete(h.prev, f)
		}
	}
	slices.Sort(gone)
	h.served = append(h.served, gone...)
}

func idleAndEmpty(s elev.ElevState) bool {
	return s.Motion == types.Idle && len(s.Pending) == 0
}

func TestEngine_ServesUpwardInOrder(t *testing.T) {
	h := startEngine(t, 1, types.Idle, 3, 5, 2)
	final := h.runUntil(idleAndEmpty)

	if !slices.Equal(h.served, []int{2, 3, 5}) {
		t.Errorf("Expected [2 3 5], got %v", h.served)
	}
	if final.Floor != 5 {
		t.Errorf("Expected floor 5, got %d", final.Floor)
	}
}

func TestEngine_ScanContinuesDownBeforeReversing(t *testing.T) {
	h := startEngine(t, 6, types.MovingDown, 4, 2, 8)
	h.runUntil(idleAndEmpty)

	if !slices.Equal(h.served, []int{4, 2, 8}) {
		t.Errorf("Expected [4 2 8], got %v", h.served)
	}
}

func TestEngine_ReversalLegServedInTravelDirection(t *testing.T) {
	h := startEngine(t, 8, types.Idle, 3, 6)
	final := h.runUntil(idleAndEmpty)

	if !slices.Equal(h.served, []int{6, 3}) {
		t.Errorf("Expected [6 3], got %v", h.served)
	}
	if final.Floor != 3 {
		t.Errorf("Expected floor 3, got %d", final.Floor)
	}
	if strings.Contains(h.logs.String(), types.ErrOutOfBoundsMovement.Error()) {
		t.Errorf("Unexpected out of bounds movement: %s", h.logs.String())
	}
}

func TestEngine_StandingOnOnlyPendingFloor(t *testing.T) {
	h := startEngine(t, 4, types.Idle, 4)
	h.runUntil(func(s elev.ElevState) bool {
		if s.Floor != 4 {
			t.Fatalf("Car moved to floor %d", s.Floor)
		}
		return idleAndEmpty(s)
	})

	logs := h.logs.String()
	if strings.Contains(logs, types.ErrOutOfBoundsMovement.Error()) {
		t.Errorf("Unexpected out of bounds movement: %s", logs)
	}
	if strings.Contains(logs, "Starting to move") {
		t.Errorf("Car should not have started moving: %s", logs)
	}
}

func TestEngine_OutOfBoundsFloorIsDroppedAndLoopContinues(t *testing.T) {
	h := startEngine(t, 9, types.Idle, 12, 5)
	final := h.runUntil(idleAndEmpty)

	if !strings.Contains(h.logs.String(), types.ErrOutOfBoundsMovement.Error()) {
		t.Errorf("Expected an out of bounds movement to be logged")
	}
	if final.Floor != 5 {
		t.Errorf("Expected the car to go on and serve floor 5, got floor %d", final.Floor)
	}
}

func TestEngine_InsertionsDuringLegAreNotLost(t *testing.T) {
	h := startEngine(t, 1, types.Idle, 5)
	h.runUntil(func(s elev.ElevState) bool { return s.Floor == 3 })
	h.add(2)
	h.add(7)
	h.runUntil(idleAndEmpty)

	if !slices.Equal(h.served, []int{5, 7, 2}) {
		t.Errorf("Expected [5 7 2], got %v", h.served)
	}
}

func TestEngine_RequestDuringDwellIsKept(t *testing.T) {
	h := startEngine(t, 1, types.Idle, 3)
	h.runUntil(func(s elev.ElevState) bool { return s.Floor == 3 && !s.Pending[3] })
	h.add(3)
	h.runUntil(idleAndEmpty)

	if !slices.Equal(h.served, []int{3, 3}) {
		t.Errorf("Expected floor 3 served twice, got %v", h.served)
	}
}

func TestEngine_MotionWhileTravelling(t *testing.T) {
	h := startEngine(t, 1, types.Idle, 4)
	s := h.runUntil(func(s elev.ElevState) bool { return s.Floor == 2 })
	if s.Motion != types.MovingUp {
		t.Errorf("Expected MovingUp between floors, got %v", s.Motion)
	}
	s = h.runUntil(func(s elev.ElevState) bool { return s.Floor == 4 && !s.Pending[4] })
	if s.Motion != types.Idle {
		t.Errorf("Expected Idle while dwelling, got %v", s.Motion)
	}
}

func TestEngine_StopsOnCancel(t *testing.T) {
	h := startEngine(t, 1, types.Idle)
	h.clk.BlockUntil(1)
	if err := h.stop(); err != nil {
		t.Errorf("Expected nil on shutdown, got %v", err)
	}
}
