package elev

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"testing"

	"liftsim/src/types"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newTestService(t *testing.T, min, max int) *Service {
	t.Helper()
	floors, err := types.NewFloorRange(min, max)
	if err != nil {
		t.Fatal(err)
	}
	return NewService(floors)
}

func checkInvariant(t *testing.T, e *Elevator) {
	t.Helper()
	if e.Dir == types.DirIdle && !e.Targets.IsEmpty() {
		t.Errorf("Elevator %d is idle with targets %v", e.ID, e.Targets.Sorted())
	}
	if e.Pending() == 0 && e.Dir != types.DirIdle {
		t.Errorf("Elevator %d has no targets but heads %v", e.ID, e.Dir)
	}
}

func TestStepMovingUp(t *testing.T) {
	s := newTestService(t, -100, 100)
	e := NewElevatorWithTarget(1, -1, 3)

	s.Step(e)

	if e.Floor != 0 {
		t.Errorf("Expected floor 0, got %d", e.Floor)
	}
	if e.Dir != types.DirUp {
		t.Errorf("Expected UP, got %v", e.Dir)
	}
}

func TestStepMovingDown(t *testing.T) {
	s := newTestService(t, -100, 100)
	e := NewElevatorWithTarget(1, 3, 0)

	s.Step(e)

	if e.Floor != 2 || e.Dir != types.DirDown {
		t.Errorf("Expected floor 2 heading DOWN, got %d heading %v", e.Floor, e.Dir)
	}
}

func TestStepIdle(t *testing.T) {
	s := newTestService(t, -100, 100)
	e := NewElevator(1, 1)

	for range 3 {
		s.Step(e)
	}

	if e.Floor != 1 || e.Dir != types.DirIdle {
		t.Errorf("Expected idle elevator to stay on 1, got %d heading %v", e.Floor, e.Dir)
	}
}

func TestStepChangingDirection(t *testing.T) {
	s := newTestService(t, -100, 100)
	e := NewElevatorWithTargets(1, 0, 1, -2)

	s.Step(e)
	if e.Floor != 1 {
		t.Fatalf("Expected floor 1, got %d", e.Floor)
	}
	if !s.ArrivedAtTarget(e) {
		t.Fatalf("Expected elevator to have arrived at 1")
	}
	s.ConsumeArrival(e)
	if !e.Targets.IsEmpty() || e.Dir != types.DirDown {
		t.Errorf("Expected empty targets heading DOWN, got %v heading %v", e.Targets.Sorted(), e.Dir)
	}

	s.Step(e)
	if e.Floor != 0 || e.Dir != types.DirDown {
		t.Errorf("Expected floor 0 heading DOWN, got %d heading %v", e.Floor, e.Dir)
	}
	if !e.Targets.Contains(-2) || !e.OtherDirTargets.IsEmpty() {
		t.Errorf("Expected -2 promoted to targets, got %v / %v", e.Targets.Sorted(), e.OtherDirTargets.Sorted())
	}
}

func TestStepLeavingRangePanics(t *testing.T) {
	s := newTestService(t, 0, 5)
	e := NewElevator(1, 5)
	e.Dir = types.DirUp
	e.AddTarget(3)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, types.ErrInvalidMove) {
			t.Errorf("Expected panic with ErrInvalidMove, got %v", r)
		}
	}()
	s.Step(e)
}

func TestConsumeArrival(t *testing.T) {
	s := newTestService(t, -100, 100)

	t.Run("more targets ahead", func(t *testing.T) {
		e := NewElevatorWithTarget(1, 1, 2)
		e.AddTarget(1)
		s.ConsumeArrival(e)
		if e.Targets.Len() != 1 || e.OtherDirTargets.Len() != 0 || e.Dir != types.DirUp {
			t.Errorf("Expected [2] heading UP, got %v heading %v", e.Targets.Sorted(), e.Dir)
		}
	})

	t.Run("more targets in other direction", func(t *testing.T) {
		e := NewElevatorWithTargets(1, 1, 2, -1)
		e.Floor = 2
		s.ConsumeArrival(e)
		if e.Targets.Len() != 0 || e.OtherDirTargets.Len() != 1 || e.Dir != types.DirDown {
			t.Errorf("Expected deferred [-1] heading DOWN, got %v / %v heading %v",
				e.Targets.Sorted(), e.OtherDirTargets.Sorted(), e.Dir)
		}
	})

	t.Run("no more targets", func(t *testing.T) {
		e := NewElevatorWithTarget(1, 1, 1)
		s.ConsumeArrival(e)
		if e.Pending() != 0 || e.Dir != types.DirIdle {
			t.Errorf("Expected idle without targets, got %d pending heading %v", e.Pending(), e.Dir)
		}
	})

	t.Run("remaining targets behind are re-aimed", func(t *testing.T) {
		e := NewElevatorWithTarget(1, 5, 8)
		e.AddTarget(2)
		e.Floor = 8
		s.ConsumeArrival(e)
		if e.Dir != types.DirDown {
			t.Errorf("Expected DOWN towards 2, got %v", e.Dir)
		}
		checkInvariant(t, e)
	})
}

func TestSelectFloor(t *testing.T) {
	s := newTestService(t, 0, 10)

	e := NewElevator(1, 4)
	if err := s.SelectFloor(e, 7); err != nil {
		t.Fatal(err)
	}
	if !e.Targets.Contains(7) || e.Dir != types.DirUp {
		t.Errorf("Expected target 7 heading UP, got %v heading %v", e.Targets.Sorted(), e.Dir)
	}

	if err := s.SelectFloor(e, 9); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectFloor(e, 1); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(e.Targets.Sorted(), []int{7, 9}) || !slices.Equal(e.OtherDirTargets.Sorted(), []int{1}) {
		t.Errorf("Expected [7 9] / [1], got %v / %v", e.Targets.Sorted(), e.OtherDirTargets.Sorted())
	}

	if err := s.SelectFloor(e, 11); !errors.Is(err, types.ErrFloorOutOfRange) {
		t.Errorf("Expected ErrFloorOutOfRange, got %v", err)
	}
	if e.Pending() != 3 {
		t.Errorf("Expected rejected floor to leave the elevator untouched, got %d pending", e.Pending())
	}

	if err := s.SelectFloor(e, 4); err != nil || e.Pending() != 3 {
		t.Errorf("Expected current floor to be ignored, got err %v and %d pending", err, e.Pending())
	}
}

func TestSelectCurrentFloorWhenFree(t *testing.T) {
	s := newTestService(t, 0, 10)
	e := NewElevator(1, 4)

	if err := s.SelectFloor(e, 4); err != nil {
		t.Fatal(err)
	}
	if !e.Targets.Contains(4) || e.Dir != types.DirIdle {
		t.Fatalf("Expected target 4 heading IDLE, got %v heading %v", e.Targets.Sorted(), e.Dir)
	}

	s.Step(e)
	if e.Floor != 4 || !s.ArrivedAtTarget(e) {
		t.Fatalf("Expected the next step to serve floor 4 in place, got floor %d", e.Floor)
	}
	s.ConsumeArrival(e)
	if e.Pending() != 0 || e.Dir != types.DirIdle {
		t.Errorf("Expected idle without targets, got %d pending heading %v", e.Pending(), e.Dir)
	}
}

func TestIsPassing(t *testing.T) {
	s := newTestService(t, -100, 100)
	up := NewElevatorWithTarget(1, 3, 6)
	down := NewElevatorWithTarget(2, 3, 0)
	idle := NewElevator(3, 3)

	testCases := []struct {
		e     *Elevator
		floor int
		want  bool
	}{
		{up, 3, true}, {up, 5, true}, {up, 2, false},
		{down, 3, true}, {down, 1, true}, {down, 4, false},
		{idle, -50, true}, {idle, 50, true},
	}
	for _, tc := range testCases {
		if got := s.IsPassing(tc.e, tc.floor); got != tc.want {
			t.Errorf("IsPassing(%v at %d, %d): expected %v, got %v", tc.e.Dir, tc.e.Floor, tc.floor, tc.want, got)
		}
	}
}

func TestSetCurrentFloor(t *testing.T) {
	s := newTestService(t, 0, 10)

	e := NewElevatorWithTargets(1, 2, 6, 1)
	if err := s.SetCurrentFloor(e, 6); err != nil {
		t.Fatal(err)
	}
	if e.Floor != 6 || !e.Targets.Contains(1) || e.Dir != types.DirDown {
		t.Errorf("Expected floor 6 heading DOWN to 1, got %d heading %v with %v", e.Floor, e.Dir, e.Targets.Sorted())
	}
	checkInvariant(t, e)

	e = NewElevatorWithTarget(2, 2, 6)
	if err := s.SetCurrentFloor(e, 8); err != nil {
		t.Fatal(err)
	}
	if e.Dir != types.DirDown {
		t.Errorf("Expected overshot elevator to turn DOWN, got %v", e.Dir)
	}

	if err := s.SetCurrentFloor(e, 11); !errors.Is(err, types.ErrFloorOutOfRange) {
		t.Errorf("Expected ErrFloorOutOfRange, got %v", err)
	}
	if e.Floor != 8 {
		t.Errorf("Expected floor unchanged, got %d", e.Floor)
	}
}

func TestSetTargetFloorsRoundTrip(t *testing.T) {
	s := newTestService(t, -2, 10)
	e := NewElevator(1, 4)

	accepted := s.SetTargetFloors(e, []int{7, 2, 12, 9, 2, -3, 0})

	if accepted != 5 {
		t.Errorf("Expected 5 accepted floors, got %d", accepted)
	}
	all := NewFloorSet(e.Targets.Sorted()...)
	for f := range e.OtherDirTargets {
		all.Add(f)
	}
	if want := []int{0, 2, 7, 9}; !slices.Equal(all.Sorted(), want) {
		t.Errorf("Expected %v, got %v", want, all.Sorted())
	}
	if e.Dir != types.DirUp || !slices.Equal(e.Targets.Sorted(), []int{7, 9}) {
		t.Errorf("Expected UP with [7 9], got %v with %v", e.Dir, e.Targets.Sorted())
	}
	checkInvariant(t, e)
}

func TestSetTargetFloorsReplacesQueues(t *testing.T) {
	s := newTestService(t, 0, 10)
	e := NewElevatorWithTargets(1, 5, 9, 1)

	s.SetTargetFloors(e, []int{3})

	if !slices.Equal(e.Targets.Sorted(), []int{3}) || !e.OtherDirTargets.IsEmpty() || e.Dir != types.DirDown {
		t.Errorf("Expected [3] heading DOWN, got %v / %v heading %v",
			e.Targets.Sorted(), e.OtherDirTargets.Sorted(), e.Dir)
	}

	s.SetTargetFloors(e, nil)
	if e.Pending() != 0 || e.Dir != types.DirIdle {
		t.Errorf("Expected cleared idle elevator, got %d pending heading %v", e.Pending(), e.Dir)
	}
}

func TestSettle(t *testing.T) {
	s := newTestService(t, 0, 10)

	e := NewElevator(1, 4)
	e.AddTarget(2)
	e.AddTarget(4)
	s.Settle(e)
	if e.Dir != types.DirDown || e.Targets.Contains(4) {
		t.Errorf("Expected DOWN without current floor, got %v with %v", e.Dir, e.Targets.Sorted())
	}

	e = NewElevator(2, 4)
	e.Dir = types.DirUp
	s.Settle(e)
	if e.Dir != types.DirIdle {
		t.Errorf("Expected elevator without targets to idle, got %v", e.Dir)
	}
}

// Drives a busy elevator to completion and checks it never leaves the range.
func TestStepNeverOverruns(t *testing.T) {
	s := newTestService(t, 0, 6)
	e := NewElevatorWithTargets(1, 3, 6, 0)
	e.AddTarget(4)
	e.AddOtherDirTarget(5)

	for range 40 {
		before := e.Floor
		s.Step(e)
		if s.ArrivedAtTarget(e) {
			s.ConsumeArrival(e)
		}
		if d := e.Floor - before; d > 1 || d < -1 {
			t.Fatalf("Expected at most one floor per step, moved %d", d)
		}
		checkInvariant(t, e)
	}
	if e.Pending() != 0 || e.Dir != types.DirIdle {
		t.Errorf("Expected all targets served, got %d pending heading %v", e.Pending(), e.Dir)
	}
}
