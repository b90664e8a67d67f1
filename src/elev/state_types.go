// State types are defined in elev package to make method receivers possible in orders.go.
package elev

import (
	"liftsim/src/types"
)

// Elevator is the state of one cabin.
//   - Targets is the primary queue, served in Dir.
//   - OtherDirTargets holds floors requested while travelling the other way. It becomes the
//     primary queue once Targets drains (see PromoteOtherDir).
//
// An idle elevator has no primary targets, and an elevator without any targets is idle.
type Elevator struct {
	ID              int
	Floor           int
	Dir             types.Direction
	Targets         FloorSet
	OtherDirTargets FloorSet
}

// FloorSet is an unordered set of floors.
type FloorSet map[int]struct{}
