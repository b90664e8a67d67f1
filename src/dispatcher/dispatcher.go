// Package dispatcher owns the elevator roster and the pending hall calls, and advances the
// simulation one tick at a time.
//
// A Dispatcher is not safe for concurrent use. The command loop drives it from one goroutine.
package dispatcher

import (
	"fmt"
	"log/slog"

	"liftsim/src/elev"
	"liftsim/src/types"
)

type Dispatcher struct {
	service   *elev.Service
	elevators []*elev.Elevator
	pending   pendingCalls
	ticks     uint64
}

// New takes ownership of elevators. Roster order is the tie-break order for dispatch and the
// order elevators move in on each tick.
func New(service *elev.Service, elevators []*elev.Elevator) *Dispatcher {
	return &Dispatcher{
		service:   service,
		elevators: elevators,
		pending:   make(pendingCalls),
	}
}

func (d *Dispatcher) Floors() types.FloorRange { return d.service.Floors() }
func (d *Dispatcher) Ticks() uint64            { return d.ticks }

// Pickup dispatches a hall call and returns the elevator that took it.
func (d *Dispatcher) Pickup(floor int, dir types.Direction) (*elev.Elevator, error) {
	if err := d.service.ValidateFloor(floor); err != nil {
		return nil, err
	}
	if dir != types.DirUp && dir != types.DirDown {
		slog.Warn("Call direction must be up or down", "floor", floor, "dir", dir)
		return nil, fmt.Errorf("%w: got %s", types.ErrIdleCall, dir)
	}

	e, err := d.service.FindDispatchCandidate(d.elevators, floor, dir)
	if err != nil {
		return nil, err
	}
	d.service.Assign(e, floor, dir)
	slog.Info("Call dispatched", "call", elev.FormatCall(floor, dir, nil), "id", e.ID)
	return e, nil
}

// PickupTo is Pickup with a destination. The destination is held back until an elevator that
// will pass it stops at the call floor.
func (d *Dispatcher) PickupTo(floor int, dir types.Direction, destination int) (*elev.Elevator, error) {
	if err := d.service.ValidateFloor(destination); err != nil {
		return nil, err
	}
	e, err := d.Pickup(floor, dir)
	if err != nil {
		return nil, err
	}
	d.pending.record(floor, destination)
	slog.Debug("Destination pending", "call", elev.FormatCall(floor, dir, &destination))

	// The chosen elevator may already be standing at the call floor.
	if e.Floor == floor {
		d.reconcileArrivals(e)
	}
	return e, nil
}

// Tick advances every elevator by one step, in roster order.
func (d *Dispatcher) Tick() {
	for _, e := range d.elevators {
		d.service.Step(e)
		if d.service.ArrivedAtTarget(e) {
			d.service.ConsumeArrival(e)
			slog.Debug("Elevator arrived", "id", e.ID, "floor", e.Floor, "dir", e.Dir)
		}
		d.reconcileArrivals(e)
	}
	d.ticks++
}

// SelectFloor adds a destination from inside the cabin of elevator id.
func (d *Dispatcher) SelectFloor(id, floor int) error {
	e, err := d.find(id)
	if err != nil {
		return err
	}
	return d.service.SelectFloor(e, floor)
}

// UpdateElevator overrides the position and/or the targets of elevator id. A nil floor or a
// nil targets slice leaves that field alone. Returns whether anything was applied.
func (d *Dispatcher) UpdateElevator(id int, floor *int, targets []int) (bool, error) {
	e, err := d.find(id)
	if err != nil {
		return false, err
	}
	if floor != nil {
		if err := d.service.ValidateFloor(*floor); err != nil {
			return false, err
		}
	}

	updated := false
	if floor != nil {
		if err := d.service.SetCurrentFloor(e, *floor); err != nil {
			return false, err
		}
		updated = true
	}
	if targets != nil {
		d.service.SetTargetFloors(e, targets)
		updated = true
	}
	if updated {
		slog.Info("Elevator updated", "id", id, "floor", e.Floor, "dir", e.Dir)
	}
	return updated, nil
}

// Status returns a snapshot of every elevator in roster order.
func (d *Dispatcher) Status() []*elev.Elevator {
	return elev.CloneAll(d.elevators)
}

func (d *Dispatcher) StatusOf(id int) (*elev.Elevator, error) {
	e, err := d.find(id)
	if err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

// ElevatorOnFloor returns a snapshot of the first elevator standing on floor.
func (d *Dispatcher) ElevatorOnFloor(floor int) (*elev.Elevator, error) {
	e, err := d.service.ElevatorOnFloor(d.elevators, floor)
	if err != nil {
		return nil, err
	}
	return e.Clone(), nil
}

func (d *Dispatcher) find(id int) (*elev.Elevator, error) {
	for _, e := range d.elevators {
		if e.ID == id {
			return e, nil
		}
	}
	slog.Warn("No elevator with this id", "id", id)
	return nil, fmt.Errorf("%w: %d", types.ErrUnknownElevator, id)
}
