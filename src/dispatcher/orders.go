package dispatcher

import (
	"log/slog"
	"slices"

	"liftsim/src/elev"
)

func (p pendingCalls) record(floor, destination int) {
	if _, ok := p[floor]; !ok {
		p[floor] = elev.FloorSet{}
	}
	p[floor].Add(destination)
}

// reconcileArrivals hands the destinations waiting at e's floor to e, if e will pass them.
// Destinations behind e stay pending for an elevator going the other way.
func (d *Dispatcher) reconcileArrivals(e *elev.Elevator) {
	destinations, ok := d.pending[e.Floor]
	if !ok {
		return
	}

	var boarded []int
	for _, floor := range destinations.Sorted() {
		if floor != e.Floor && d.service.IsPassing(e, floor) {
			boarded = append(boarded, floor)
		}
	}
	for _, floor := range boarded {
		if err := d.service.SelectFloor(e, floor); err != nil {
			slog.Error("Pending destination rejected", "id", e.ID, "floor", floor, "err", err)
		}
		destinations.Remove(floor)
	}
	destinations.Remove(e.Floor)

	if destinations.IsEmpty() {
		delete(d.pending, e.Floor)
	}
	if len(boarded) > 0 {
		slog.Debug("Pending destinations boarded", "id", e.ID, "floor", e.Floor, "destinations", boarded)
	}
}

// PendingCalls returns a copy of the pending calls ordered by call floor.
func (d *Dispatcher) PendingCalls() []PendingCall {
	calls := make([]PendingCall, 0, len(d.pending))
	for floor, destinations := range d.pending {
		calls = append(calls, PendingCall{Floor: floor, Destinations: destinations.Sorted()})
	}
	slices.SortFunc(calls, func(a, b PendingCall) int { return a.Floor - b.Floor })
	return calls
}
