// Package roster builds the initial set of elevators, either from a JSON file or from the
// configured elevator count.
package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"liftsim/src/elev"
	"liftsim/src/types"
)

// Record is one elevator as stored in a roster file.
type Record struct {
	ID                         int             `json:"id"`
	CurrentFloor               int             `json:"currentFloor"`
	CurrentDirection           types.Direction `json:"currentDirection"`
	TargetFloors               []int           `json:"targetFloors"`
	TargetFloorsOtherDirection []int           `json:"targetFloorsOtherDirection"`
}

// LoadFile reads a roster file. See Load.
func LoadFile(path string, service *elev.Service, limit int) ([]*elev.Elevator, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidRoster, err)
	}
	defer file.Close()

	elevators, err := Load(file, service, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return elevators, nil
}

// Load decodes a JSON array of records into elevators.
//   - At most limit elevators are allowed.
//   - Every floor must lie in the service's floor range.
//   - A positive id is kept. A zero id is replaced by one above every id in the file.
//   - Duplicate or negative ids are rejected.
//
// Loaded elevators are settled so the first tick never overruns the floor range.
func Load(r io.Reader, service *elev.Service, limit int) ([]*elev.Elevator, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidRoster, err)
	}
	if len(records) > limit {
		return nil, fmt.Errorf("%w: too many elevators in file (%d), numberOfElevators = %d",
			types.ErrInvalidRoster, len(records), limit)
	}

	ids := NewIDAllocator()
	seen := make(map[int]bool, len(records))
	for _, rec := range records {
		switch {
		case rec.ID < 0:
			return nil, fmt.Errorf("%w: negative elevator id %d", types.ErrInvalidRoster, rec.ID)
		case rec.ID == 0:
			continue
		case seen[rec.ID]:
			return nil, fmt.Errorf("%w: duplicate elevator id %d", types.ErrInvalidRoster, rec.ID)
		}
		seen[rec.ID] = true
		ids.Reserve(rec.ID)
	}

	floors := service.Floors()
	elevators := make([]*elev.Elevator, 0, len(records))
	for _, rec := range records {
		id := rec.ID
		if id == 0 {
			id = ids.Next()
			slog.Debug("Allocated elevator id", "id", id)
		}
		if err := validateRecord(rec, floors); err != nil {
			return nil, fmt.Errorf("elevator %d: %w", id, err)
		}

		e := elev.NewElevator(id, rec.CurrentFloor)
		e.Dir = rec.CurrentDirection
		e.SetTargets(elev.NewFloorSet(rec.TargetFloors...))
		e.SetOtherDirTargets(elev.NewFloorSet(rec.TargetFloorsOtherDirection...))
		service.Settle(e)
		elevators = append(elevators, e)
	}

	slog.Info("Roster loaded", "elevators", len(elevators))
	return elevators, nil
}

// Default returns n idle elevators with ids 1..n, standing on floor 0 or the range bound
// closest to it.
func Default(n int, floors types.FloorRange) []*elev.Elevator {
	ids := NewIDAllocator()
	start := floors.Clamp(0)
	elevators := make([]*elev.Elevator, 0, max(n, 0))
	for range n {
		elevators = append(elevators, elev.NewElevator(ids.Next(), start))
	}
	slog.Info("Default roster created", "elevators", len(elevators), "floor", start)
	return elevators
}

func validateRecord(rec Record, floors types.FloorRange) error {
	if !floors.Contains(rec.CurrentFloor) {
		return fmt.Errorf("%w: current floor %d not in %s", types.ErrInvalidRoster, rec.CurrentFloor, floors)
	}
	for _, f := range rec.TargetFloors {
		if !floors.Contains(f) {
			return fmt.Errorf("%w: target floor %d not in %s", types.ErrInvalidRoster, f, floors)
		}
	}
	for _, f := range rec.TargetFloorsOtherDirection {
		if !floors.Contains(f) {
			return fmt.Errorf("%w: other direction target floor %d not in %s", types.ErrInvalidRoster, f, floors)
		}
	}
	return nil
}
