package elev

import (
	"slices"

	"liftsim/src/types"
)

// NewFloorSet returns a set holding the given floors.
func NewFloorSet(floors ...int) FloorSet {
	fs := make(FloorSet, len(floors))
	for _, f := range floors {
		fs[f] = struct{}{}
	}
	return fs
}

func (fs FloorSet) Add(floor int)    { fs[floor] = struct{}{} }
func (fs FloorSet) Remove(floor int) { delete(fs, floor) }
func (fs FloorSet) Len() int         { return len(fs) }
func (fs FloorSet) IsEmpty() bool    { return len(fs) == 0 }

func (fs FloorSet) Contains(floor int) bool {
	_, ok := fs[floor]
	return ok
}

// Clear empties the set in place.
func (fs FloorSet) Clear() {
	for f := range fs {
		delete(fs, f)
	}
}

func (fs FloorSet) Clone() FloorSet {
	return NewFloorSet(fs.Sorted()...)
}

// Sorted returns the floors in ascending order.
func (fs FloorSet) Sorted() []int {
	floors := make([]int, 0, len(fs))
	for f := range fs {
		floors = append(floors, f)
	}
	slices.Sort(floors)
	return floors
}

// Nearest returns the floor closest to from. Ties go to the lower floor.
func (fs FloorSet) Nearest(from int) (int, bool) {
	best, found := 0, false
	for _, f := range fs.Sorted() {
		if !found || abs(f-from) < abs(best-from) {
			best, found = f, true
		}
	}
	return best, found
}

// AnyAhead reports whether a floor lies strictly beyond from in dir.
func (fs FloorSet) AnyAhead(from int, dir types.Direction) bool {
	for f := range fs {
		if (dir == types.DirUp && f > from) || (dir == types.DirDown && f < from) {
			return true
		}
	}
	return false
}

// The primitives below do no validation. Callers check floor bounds first.

func (e *Elevator) AddTarget(floor int) {
	if e.Targets == nil {
		e.Targets = FloorSet{}
	}
	e.Targets.Add(floor)
}

func (e *Elevator) RemoveTarget(floor int) {
	e.Targets.Remove(floor)
}

func (e *Elevator) AddOtherDirTarget(floor int) {
	if e.OtherDirTargets == nil {
		e.OtherDirTargets = FloorSet{}
	}
	e.OtherDirTargets.Add(floor)
}

func (e *Elevator) SetTargets(floors FloorSet) {
	if floors == nil {
		floors = FloorSet{}
	}
	e.Targets = floors
}

func (e *Elevator) SetOtherDirTargets(floors FloorSet) {
	if floors == nil {
		floors = FloorSet{}
	}
	e.OtherDirTargets = floors
}

// PromoteOtherDir makes the deferred queue the primary queue and empties the deferred queue.
func (e *Elevator) PromoteOtherDir() {
	e.SetTargets(e.OtherDirTargets)
	e.SetOtherDirTargets(FloorSet{})
}

// Pending counts every destination the elevator still has to serve.
func (e *Elevator) Pending() int {
	return e.Targets.Len() + e.OtherDirTargets.Len()
}

func (e *Elevator) hasAnyTarget() bool {
	return e.Pending() > 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
