// Contains the movement rules for single elevator control.
package elev

import (
	"fmt"
	"log/slog"

	"liftsim/src/types"
)

// Service applies movement and dispatch rules to elevators within one floor range.
// It keeps no per-elevator state.
type Service struct {
	floors types.FloorRange
}

func NewService(floors types.FloorRange) *Service {
	return &Service{floors: floors}
}

func (s *Service) Floors() types.FloorRange { return s.floors }

// ValidateFloor logs and rejects floors outside the range.
func (s *Service) ValidateFloor(floor int) error {
	if s.floors.Contains(floor) {
		return nil
	}
	slog.Warn("Given floor is out of range", "floor", floor, "min", s.floors.Min, "max", s.floors.Max)
	return fmt.Errorf("%w: %d not in %s", types.ErrFloorOutOfRange, floor, s.floors)
}

// Step advances the elevator by one floor.
//  1. Primary targets left: move in the current direction.
//  2. Only deferred targets left: promote them, aim at the nearest one and move.
//  3. Nothing to do: stay put.
func (s *Service) Step(e *Elevator) {
	switch {
	case !e.Targets.IsEmpty():
		s.moveOneFloor(e)
	case !e.OtherDirTargets.IsEmpty():
		e.PromoteOtherDir()
		aimAtNearest(e)
		s.moveOneFloor(e)
	}
}

// ArrivedAtTarget reports whether the current floor is in the primary queue.
func (s *Service) ArrivedAtTarget(e *Elevator) bool {
	return e.Targets.Contains(e.Floor)
}

// ConsumeArrival clears the current floor from the primary queue and updates the heading.
// The deferred queue is not moved here. Step promotes it on the next tick.
func (s *Service) ConsumeArrival(e *Elevator) {
	e.RemoveTarget(e.Floor)
	updateDirection(e)
}

// SelectFloor adds a destination chosen inside the cabin. With an empty primary queue the
// current floor is queued as well, heading IDLE, and the next tick serves it on the spot.
// A busy cabin ignores its current floor.
func (s *Service) SelectFloor(e *Elevator, floor int) error {
	if err := s.ValidateFloor(floor); err != nil {
		return err
	}
	switch {
	case e.Targets.IsEmpty():
		e.AddTarget(floor)
		e.Dir = types.DirectionFromFloors(e.Floor, floor)
	case floor == e.Floor:
		slog.Debug("Elevator already at selected floor", "id", e.ID, "floor", floor)
	case s.IsPassing(e, floor):
		e.AddTarget(floor)
	default:
		e.AddOtherDirTarget(floor)
	}
	return nil
}

// IsPassing reports whether floor lies ahead of the elevator, or anywhere if it is idle.
func (s *Service) IsPassing(e *Elevator, floor int) bool {
	switch e.Dir {
	case types.DirUp:
		return floor >= e.Floor
	case types.DirDown:
		return floor <= e.Floor
	default:
		return true
	}
}

// SetCurrentFloor moves the elevator to floor without travelling.
func (s *Service) SetCurrentFloor(e *Elevator, floor int) error {
	if err := s.ValidateFloor(floor); err != nil {
		return err
	}
	e.Floor = floor
	e.RemoveTarget(floor)
	if e.Targets.IsEmpty() && !e.OtherDirTargets.IsEmpty() {
		e.PromoteOtherDir()
		e.RemoveTarget(floor)
	}
	aimAtNearest(e)
	slog.Debug("Elevator floor overridden", "id", e.ID, "floor", floor, "dir", e.Dir)
	return nil
}

// SetTargetFloors replaces both queues. Floors are sorted into the queues as if they were
// requested one by one from an idle elevator. Out-of-range floors are skipped.
// Returns how many floors were accepted.
func (s *Service) SetTargetFloors(e *Elevator, floors []int) int {
	e.SetTargets(FloorSet{})
	e.SetOtherDirTargets(FloorSet{})
	e.Dir = types.DirIdle

	accepted := 0
	for _, floor := range floors {
		if err := s.ValidateFloor(floor); err != nil {
			continue
		}
		switch {
		case e.Dir == types.DirIdle:
			e.AddTarget(floor)
			e.Dir = types.DirectionFromFloors(e.Floor, floor)
		case s.IsPassing(e, floor):
			e.AddTarget(floor)
		default:
			e.AddOtherDirTarget(floor)
		}
		accepted++
	}
	slog.Debug("Elevator targets overridden", "id", e.ID, "accepted", accepted, "requested", len(floors))
	return accepted
}

// Settle brings an elevator loaded from outside into a state Step can drive: the current
// floor counts as served, an elevator without targets idles, and a heading with nothing ahead
// is aimed at the nearest target.
func (s *Service) Settle(e *Elevator) {
	e.RemoveTarget(e.Floor)
	switch {
	case !e.hasAnyTarget():
		e.Dir = types.DirIdle
	case e.Targets.IsEmpty():
		// Step promotes the deferred queue.
	case e.Dir == types.DirIdle || !e.Targets.AnyAhead(e.Floor, e.Dir):
		aimAtNearest(e)
	}
}

func (s *Service) moveOneFloor(e *Elevator) {
	next := e.Floor + e.Dir.Sign()
	if !s.floors.Contains(next) {
		err := fmt.Errorf("%w: elevator %d at floor %d heading %s would leave %s",
			types.ErrInvalidMove, e.ID, e.Floor, e.Dir, s.floors)
		slog.Error("Elevator cannot do this move", "id", e.ID, "floor", e.Floor, "dir", e.Dir,
			"min", s.floors.Min, "max", s.floors.Max)
		panic(err)
	}
	e.Floor = next
}

// updateDirection runs after a primary target has been served.
//   - Nothing left: idle.
//   - Only deferred targets left: turn around.
//   - Primary targets left but none ahead: aim at the nearest one.
func updateDirection(e *Elevator) {
	switch {
	case !e.hasAnyTarget():
		e.Dir = types.DirIdle
	case e.Targets.IsEmpty():
		e.Dir = e.Dir.Opposite()
	case !e.Targets.AnyAhead(e.Floor, e.Dir):
		aimAtNearest(e)
	}
}

func aimAtNearest(e *Elevator) {
	nearest, ok := e.Targets.Nearest(e.Floor)
	if !ok {
		e.Dir = types.DirIdle
		return
	}
	e.Dir = types.DirectionFromFloors(e.Floor, nearest)
}
