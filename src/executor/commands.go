package executor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"liftsim/src/elev"
	"liftsim/src/types"
	"liftsim/src/utils"
)

var errUsage = errors.New("invalid command use")

func (x *Executor) status(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(x.out, utils.StatusTable(x.d.Status()))
		return nil
	}
	id, err := parseInt(args[0], "id")
	if err != nil {
		return err
	}
	e, err := x.d.StatusOf(id)
	if err != nil {
		return err
	}
	fmt.Fprint(x.out, utils.StatusTable([]*elev.Elevator{e}))
	return nil
}

// call <floor> <direction> [destination|null]
func (x *Executor) call(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: call <floor> <direction> <desiredFloor?>", errUsage)
	}
	floor, err := parseInt(args[0], "floor")
	if err != nil {
		return err
	}
	dir, err := types.ParseDirection(args[1])
	if err != nil {
		return err
	}
	if dir == types.DirIdle {
		return fmt.Errorf("%w: direction should not be IDLE", types.ErrIdleCall)
	}
	destination, err := parseOptionalInt(args, 2, "desiredFloor")
	if err != nil {
		return err
	}

	var e *elev.Elevator
	if destination == nil {
		e, err = x.d.Pickup(floor, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(x.out, "Elevator %d has been called on floor %d\n", e.ID, floor)
	} else {
		e, err = x.d.PickupTo(floor, dir, *destination)
		if err != nil {
			return err
		}
		fmt.Fprintf(x.out, "Elevator %d has been called on floor %d, and user wants to get on floor %d\n",
			e.ID, floor, *destination)
	}
	return x.status([]string{strconv.Itoa(e.ID)})
}

// select <id> <floor>
func (x *Executor) selectFloor(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: select <id> <floor>", errUsage)
	}
	id, err := parseInt(args[0], "id")
	if err != nil {
		return err
	}
	floor, err := parseInt(args[1], "floor")
	if err != nil {
		return err
	}
	if err := x.d.SelectFloor(id, floor); err != nil {
		return err
	}
	fmt.Fprintf(x.out, "Floor %d selected in elevator %d\n", floor, id)
	return nil
}

// update <id> [floor|null] [f1,f2,...|null]
func (x *Executor) update(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: update cannot be done without an elevator id", errUsage)
	}
	id, err := parseInt(args[0], "id")
	if err != nil {
		return err
	}
	floor, err := parseOptionalInt(args, 1, "currentFloor")
	if err != nil {
		return err
	}
	var targets []int
	if len(args) > 2 && args[2] != nullArg {
		if targets, err = parseIntList(args[2]); err != nil {
			return err
		}
	}

	updated, err := x.d.UpdateElevator(id, floor, targets)
	if err != nil {
		return err
	}
	if updated {
		fmt.Fprintf(x.out, "Elevator with id %d has been updated\n", id)
	} else {
		fmt.Fprintf(x.out, "Elevator with id %d has NOT been updated\n", id)
	}
	return nil
}

func (x *Executor) pending() {
	fmt.Fprint(x.out, utils.PendingTable(x.d.PendingCalls()))
}

func parseInt(s, name string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", errUsage, name, s)
	}
	return v, nil
}

// parseOptionalInt returns nil when args[i] is missing or "null".
func parseOptionalInt(args []string, i int, name string) (*int, error) {
	if len(args) <= i || args[i] == nullArg {
		return nil, nil
	}
	v, err := parseInt(args[i], name)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	floors := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := parseInt(strings.TrimSpace(p), "target floor")
		if err != nil {
			return nil, err
		}
		floors = append(floors, v)
	}
	return floors, nil
}
