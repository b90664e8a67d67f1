package elev

import (
	"github.com/tiendc/go-deepcopy"
)

// Clone returns a deep copy of the elevator. Status reports are built from clones so
// renderers never hold on to the live target sets.
func (e *Elevator) Clone() *Elevator {
	clone := new(Elevator)
	if err := deepcopy.Copy(clone, e); err != nil {
		panic(err)
	}
	if clone.Targets == nil {
		clone.Targets = FloorSet{}
	}
	if clone.OtherDirTargets == nil {
		clone.OtherDirTargets = FloorSet{}
	}
	return clone
}

// CloneAll clones every elevator, keeping roster order.
func CloneAll(elevators []*Elevator) []*Elevator {
	clones := make([]*Elevator, 0, len(elevators))
	for _, e := range elevators {
		clones = append(clones, e.Clone())
	}
	return clones
}
