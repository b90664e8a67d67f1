package dispatcher

import (
	"liftsim/src/elev"
)

// pendingCalls maps a call floor to the destinations requested there. Destinations wait until
// an elevator that will pass them stops at the call floor.
type pendingCalls map[int]elev.FloorSet

// PendingCall is one entry of the pending-call map, as reported to front ends.
type PendingCall struct {
	Floor        int
	Destinations []int
}
