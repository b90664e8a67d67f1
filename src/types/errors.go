package types

import "errors"

var (
	ErrInvalidDirection = errors.New("invalid direction")
	ErrFloorOutOfRange  = errors.New("floor out of range")
	ErrUnknownElevator  = errors.New("unknown elevator")
	ErrIdleCall         = errors.New("call direction must be up or down")

	// ErrNoElevatorsAvailable means the roster is empty. Front ends should report the system as
	// unavailable rather than the request as bad.
	ErrNoElevatorsAvailable = errors.New("no elevators available")

	// ErrInvalidMove is an assertion failure: a step would leave the floor range, so a target
	// was accepted without validation somewhere upstream. It is only ever a panic payload.
	ErrInvalidMove = errors.New("invalid move")

	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidRoster = errors.New("invalid roster")
)
