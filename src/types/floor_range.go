package types

import (
	"fmt"
	"log/slog"
)

// FloorRange is the inclusive span of floors served by the building.
type FloorRange struct {
	Min int
	Max int
}

// NewFloorRange validates the bounds. Equal bounds are allowed but logged as degenerate.
func NewFloorRange(min, max int) (FloorRange, error) {
	if min > max {
		return FloorRange{}, fmt.Errorf("%w: minFloorValue %d is bigger than maxFloorValue %d", ErrInvalidConfig, min, max)
	}
	if min == max {
		slog.Warn("Lowest and highest floor are the same", "min", min, "max", max)
	}
	return FloorRange{Min: min, Max: max}, nil
}

func (r FloorRange) Contains(floor int) bool {
	return floor >= r.Min && floor <= r.Max
}

// Clamp moves floor into the range.
func (r FloorRange) Clamp(floor int) int {
	return min(max(floor, r.Min), r.Max)
}

func (r FloorRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
