package elev

import (
	"fmt"
	"log/slog"

	"liftsim/src/types"
)

// FindDispatchCandidate picks the elevator that should serve a hall call. In order of preference:
//  1. An elevator already on the call floor with a compatible heading.
//  2. The closest compatible elevator that will pass the call floor.
//  3. The elevator with the fewest pending targets.
//
// Ties keep roster order. A single elevator is always chosen.
func (s *Service) FindDispatchCandidate(elevators []*Elevator, floor int, dir types.Direction) (*Elevator, error) {
	if dir == types.DirIdle {
		slog.Warn("Hall call has no direction", "floor", floor)
	}
	switch len(elevators) {
	case 0:
		slog.Warn("No elevators to dispatch", "floor", floor, "dir", dir)
		return nil, types.ErrNoElevatorsAvailable
	case 1:
		return elevators[0], nil
	}

	for _, e := range elevators {
		if e.Floor == floor && hasCompatibleDirection(e, dir) {
			slog.Debug("Dispatch: elevator already on floor", "id", e.ID, "floor", floor)
			return e, nil
		}
	}

	var closest *Elevator
	for _, e := range elevators {
		if !hasCompatibleDirection(e, dir) || !s.IsPassing(e, floor) {
			continue
		}
		if closest == nil || abs(e.Floor-floor) < abs(closest.Floor-floor) {
			closest = e
		}
	}
	if closest != nil {
		slog.Debug("Dispatch: closest passing elevator", "id", closest.ID, "floor", closest.Floor, "call", floor)
		return closest, nil
	}

	leastBusy := elevators[0]
	for _, e := range elevators[1:] {
		if e.Pending() < leastBusy.Pending() {
			leastBusy = e
		}
	}
	slog.Debug("Dispatch: least busy elevator", "id", leastBusy.ID, "pending", leastBusy.Pending())
	return leastBusy, nil
}

// Assign books a hall call on e.
//   - Compatible and on the call floor: nothing to add, the doors open here.
//   - Compatible: primary queue. A floor behind the cabin is served once the floors ahead are.
//   - Otherwise: deferred queue.
//
// An idle elevator starts heading for the call floor.
func (s *Service) Assign(e *Elevator, floor int, dir types.Direction) {
	compatible := hasCompatibleDirection(e, dir)
	switch {
	case compatible && e.Floor == floor:
		slog.Debug("Elevator already on call floor", "id", e.ID, "floor", floor)
		return
	case compatible:
		e.AddTarget(floor)
		// A cabin that just turned around may have nothing ahead in its primary queue.
		if e.Dir != types.DirIdle && !e.Targets.AnyAhead(e.Floor, e.Dir) {
			aimAtNearest(e)
		}
	default:
		e.AddOtherDirTarget(floor)
	}
	if e.Dir == types.DirIdle {
		e.Dir = types.DirectionFromFloors(e.Floor, floor)
	}
	slog.Debug("Call assigned", "id", e.ID, "floor", floor, "dir", dir, "heading", e.Dir)
}

// ElevatorOnFloor returns the first elevator standing on floor.
func (s *Service) ElevatorOnFloor(elevators []*Elevator, floor int) (*Elevator, error) {
	if err := s.ValidateFloor(floor); err != nil {
		return nil, err
	}
	for _, e := range elevators {
		if e.Floor == floor {
			return e, nil
		}
	}
	return nil, fmt.Errorf("%w: no elevator on floor %d", types.ErrUnknownElevator, floor)
}

func hasCompatibleDirection(e *Elevator, dir types.Direction) bool {
	return e.Dir == types.DirIdle || e.Dir == dir
}
