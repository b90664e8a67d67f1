package elev

import (
	"log/slog"

	"liftsim/src/types"
)

// NewElevator returns an idle elevator standing on floor.
func NewElevator(id, floor int) *Elevator {
	elevator := &Elevator{
		ID:              id,
		Floor:           floor,
		Dir:             types.DirIdle,
		Targets:         FloorSet{},
		OtherDirTargets: FloorSet{},
	}
	slog.Debug("Elevator initialized", "id", id, "floor", floor)
	return elevator
}

// NewElevatorWithTarget returns an elevator on floor heading for target.
func NewElevatorWithTarget(id, floor, target int) *Elevator {
	elevator := NewElevator(id, floor)
	elevator.AddTarget(target)
	elevator.Dir = types.DirectionFromFloors(floor, target)
	return elevator
}

// NewElevatorWithTargets is NewElevatorWithTarget plus one floor deferred until the
// elevator turns around.
func NewElevatorWithTargets(id, floor, target, otherDirTarget int) *Elevator {
	elevator := NewElevatorWithTarget(id, floor, target)
	elevator.AddOtherDirTarget(otherDirTarget)
	return elevator
}
