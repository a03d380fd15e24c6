package utils

import (
	"slices"
)

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// SortedFloors returns the members of a floor set in ascending order.
func SortedFloors(set map[int]bool) []int {
	floors := make([]int, 0, len(set))
	for floor, active := range set {
		if active {
			floors = append(floors, floor)
		}
	}
	slices.Sort(floors)
	return floors
}

// FloorsAbove returns floors strictly greater than from, ascending.
func FloorsAbove(set map[int]bool, from int) []int {
	return slices.DeleteFunc(SortedFloors(set), func(f int) bool { return f <= from })
}

// FloorsBelow returns floors strictly less than from, descending.
func FloorsBelow(set map[int]bool, from int) []int {
	floors := slices.DeleteFunc(SortedFloors(set), func(f int) bool { return f >= from })
	slices.Reverse(floors)
	return floors
}

// MinDistance is the smallest |f - floor| over the set, or 0 for an empty set.
func MinDistance(set map[int]bool, floor int) int {
	best, found := 0, false
	for f, active := range set {
		if !active {
			continue
		}
		if d := Abs(f - floor); !found || d < best {
			best, found = d, true
		}
	}
	return best
}
