package utils

import (
	"fmt"
	"strconv"
	"strings"

	"liftsim/src/dispatcher"
	"liftsim/src/elev"
)

const (
	rowFormat    = "| %-12s | %-15s | %-20s | %-30s | %-35s |\n"
	rowSeparator = "+--------------+-----------------+----------------------+--------------------------------+-------------------------------------+\n"
)

var headers = []any{"Elevator ID", "Current Floor", "Current Direction", "Target Floors", "Target Floors (Other Direction)"}

// StatusTable renders one row per elevator, in the order given.
func StatusTable(elevators []*elev.Elevator) string {
	var sb strings.Builder
	sb.WriteString(rowSeparator)
	fmt.Fprintf(&sb, rowFormat, headers...)
	sb.WriteString(rowSeparator)
	for _, e := range elevators {
		fmt.Fprintf(&sb, rowFormat,
			strconv.Itoa(e.ID),
			strconv.Itoa(e.Floor),
			e.Dir.String(),
			FormatFloors(e.Targets),
			FormatFloors(e.OtherDirTargets),
		)
		sb.WriteString(rowSeparator)
	}
	return sb.String()
}

// FormatFloors prints a set in ascending order, e.g. "[1, 3]".
func FormatFloors(fs elev.FloorSet) string {
	return FormatFloorList(fs.Sorted())
}

func FormatFloorList(floors []int) string {
	parts := make([]string, len(floors))
	for i, f := range floors {
		parts[i] = strconv.Itoa(f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// PendingTable lists destinations still waiting at their call floors.
func PendingTable(calls []dispatcher.PendingCall) string {
	if len(calls) == 0 {
		return "No pending calls\n"
	}
	var sb strings.Builder
	for _, c := range calls {
		fmt.Fprintf(&sb, "Floor %d -> %s\n", c.Floor, FormatFloorList(c.Destinations))
	}
	return sb.String()
}
