package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Direction is the signed heading of a cabin or a call.
type Direction int

const (
	DirUp   Direction = 1
	DirIdle Direction = 0
	DirDown Direction = -1
)

// DirectionFromSign maps -1, 0 and 1 to Down, Idle and Up.
func DirectionFromSign(v int) (Direction, error) {
	switch v {
	case 1:
		return DirUp, nil
	case 0:
		return DirIdle, nil
	case -1:
		return DirDown, nil
	}
	return DirIdle, fmt.Errorf("%w: %d", ErrInvalidDirection, v)
}

// DirectionFromFloors returns the heading needed to travel from one floor to another.
func DirectionFromFloors(from, to int) Direction {
	switch {
	case to > from:
		return DirUp
	case to < from:
		return DirDown
	default:
		return DirIdle
	}
}

// ParseDirection accepts a signed unit ("1", "-1", "0") or a name ("up", "DOWN", "idle").
func ParseDirection(s string) (Direction, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return DirectionFromSign(v)
	}
	switch strings.ToUpper(s) {
	case "UP":
		return DirUp, nil
	case "DOWN":
		return DirDown, nil
	case "IDLE":
		return DirIdle, nil
	}
	return DirIdle, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) Sign() int { return int(d) }

// Opposite flips Up and Down. Idle has no opposite and stays Idle.
func (d Direction) Opposite() Direction {
	return Direction(-int(d))
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "UP"
	case DirDown:
		return "DOWN"
	case DirIdle:
		return "IDLE"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts both the name and the signed integer form.
func (d *Direction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		parsed, err := ParseDirection(name)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDirection, string(data))
	}
	parsed, err := DirectionFromSign(v)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
