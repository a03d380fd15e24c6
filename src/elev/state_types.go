// State types are defined in elev package to make method receivers possible in elev_state.go.
package elev

import (
	"sync"

	"fleetvator/src/types"
)

// ElevState represents the state of one elevator.
type ElevState struct {
	ID      int
	Floor   int
	Motion  types.Motion
	Pending map[int]bool // floors committed to but not yet served
}

// ElevStateMgr owns one elevator's state and serializes access to it.
// Floor and Motion are only written by the elevator's own movement loop.
type ElevStateMgr struct {
	mu    sync.Mutex
	state ElevState
}

// Fleet is the ordered, index-stable set of elevators. Order decides assignment ties.
type Fleet struct {
	elevators []*ElevStateMgr
}
