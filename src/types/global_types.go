package types

import (
	"fmt"
	"strings"
)

// Direction is the direction a hall caller wants to travel.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Valid reports whether d is one of the declared directions.
func (d Direction) Valid() bool {
	return d == Up || d == Down
}

// Step is the floor delta of one move in direction d.
func (d Direction) Step() int {
	if d == Down {
		return -1
	}
	return 1
}

func (d Direction) Opposite() Direction {
	if d == Up {
		return Down
	}
	return Up
}

// Motion returns the motion an elevator is in while travelling in direction d.
func (d Direction) Motion() Motion {
	if d == Down {
		return MovingDown
	}
	return MovingUp
}

// ParseDirection accepts "up"/"down" in any case, and the u/d shorthands.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Motion is the movement state of a single elevator.
type Motion int

const (
	Idle Motion = iota
	MovingUp
	MovingDown
)

func (m Motion) String() string {
	switch m {
	case Idle:
		return "Idle"
	case MovingUp:
		return "MovingUp"
	case MovingDown:
		return "MovingDown"
	}
	return fmt.Sprintf("Motion(%d)", int(m))
}

// ElevatorStatus is one row of a fleet status snapshot.
type ElevatorStatus struct {
	ID      int
	Floor   int
	Motion  Motion
	Pending []int
}

// HallRequest is a (floor, direction) call from a landing.
type HallRequest struct {
	Floor int
	Dir   Direction
}

func (r HallRequest) String() string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(r.Dir.String()), r.Floor)
}
