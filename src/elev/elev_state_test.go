package elev

import (
	"slices"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"fleetvator/src/types"
)

func TestInitFleet(t *testing.T) {
	fleet := InitFleet(3, zerolog.Nop())
	if fleet.Len() != 3 {
		t.Fatalf("Expected 3 elevators, got %d", fleet.Len())
	}
	for i, status := range fleet.Snapshot() {
		if status.ID != i+1 {
			t.Errorf("Expected ID %d, got %d", i+1, status.ID)
		}
		if status.Floor != 1 || status.Motion != types.Idle || len(status.Pending) != 0 {
			t.Errorf("Expected idle at floor 1 with nothing pending, got %+v", status)
		}
	}
}

func TestPendingIsASet(t *testing.T) {
	elevMgr := NewElevStateMgr(1, 1)
	if !elevMgr.AddPending(4) {
		t.Errorf("First insert should report added")
	}
	if elevMgr.AddPending(4) {
		t.Errorf("Second insert should report not added")
	}
	if got := elevMgr.GetState().Status().Pending; !slices.Equal(got, []int{4}) {
		t.Errorf("Expected [4], got %v", got)
	}
	if !elevMgr.RemovePending(4) || elevMgr.RemovePending(4) {
		t.Errorf("Expected first remove true, second false")
	}
}

func TestGetStateIsDeepCopy(t *testing.T) {
	elevMgr := NewElevStateMgr(1, 3)
	elevMgr.AddPending(5)

	snapshot := elevMgr.GetState()
	snapshot.Pending[9] = true
	snapshot.Floor = 7

	live := elevMgr.GetState()
	if live.Pending[9] {
		t.Errorf("Mutating a snapshot leaked into the live pending set")
	}
	if live.Floor != 3 {
		t.Errorf("Expected floor 3, got %d", live.Floor)
	}
}

func TestSetMotionReportsChange(t *testing.T) {
	elevMgr := NewElevStateMgr(1, 1)
	if elevMgr.SetMotion(types.Idle) {
		t.Errorf("Idle to Idle should not report a change")
	}
	if !elevMgr.SetMotion(types.MovingUp) {
		t.Errorf("Idle to MovingUp should report a change")
	}
}

func TestConcurrentInsertsAreNeverLost(t *testing.T) {
	elevMgr := NewElevStateMgr(1, 1)
	var wg sync.WaitGroup
	for floor := 2; floor <= 50; floor++ {
		wg.Add(2)
		go func(f int) { defer wg.Done(); elevMgr.AddPending(f) }(floor)
		go func(f int) { defer wg.Done(); elevMgr.AddPending(f) }(floor)
	}
	wg.Wait()
	if got := len(elevMgr.GetState().Pending); got != 49 {
		t.Errorf("Expected 49 pending floors, got %d", got)
	}
}
