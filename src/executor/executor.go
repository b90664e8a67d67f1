// Package executor runs the interactive command loop on top of a dispatcher.
package executor

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"liftsim/src/dispatcher"
)

const (
	nullArg = "null"
	prompt  = "Enter command (use `help` command to display available commands)\n"
)

type Executor struct {
	d   *dispatcher.Dispatcher
	out io.Writer
}

func New(d *dispatcher.Dispatcher, out io.Writer) *Executor {
	return &Executor{d: d, out: out}
}

// Run reads commands from in until `exit` or end of input. Bad commands are reported and the
// loop carries on.
func (x *Executor) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(x.out, prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if stop := x.Execute(line); stop {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// Execute runs one command line and reports whether the loop should stop.
func (x *Executor) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	name, args := strings.ToLower(fields[0]), fields[1:]
	log := slog.With("cmd", uuid.New().String(), "command", name)
	log.Debug("Command received", "args", args)

	var err error
	switch name {
	case "exit":
		fmt.Fprintln(x.out, "Shutting down application")
		return true
	case "help":
		x.help()
	case "step":
		x.d.Tick()
		fmt.Fprintln(x.out, "Step in simulation has been finished")
		x.status(nil)
	case "status":
		err = x.status(args)
	case "call":
		err = x.call(args)
	case "select":
		err = x.selectFloor(args)
	case "update":
		err = x.update(args)
	case "pending":
		x.pending()
	default:
		log.Warn("Unknown command", "line", line)
		fmt.Fprintf(x.out, "Unknown command `%s`\n", name)
		return false
	}

	if err != nil {
		log.Warn("Command failed", "err", err)
		fmt.Fprintf(x.out, "Error: %v\n", err)
	}
	return false
}

func (x *Executor) help() {
	fmt.Fprintf(x.out, `
            ------------------------Available Commands------------------------
    The ? symbol marks an optional argument. Pass %[1]q or leave it out if it is the last one.
    help - displays available commands.
    exit - stops the application.
    step - performs a step in the simulation. Status is displayed after each step.
    status <id?> - displays the statuses of the elevators.
    call <floor> <direction> <desiredFloor?> - calls an elevator to floor to travel in direction
        (1 or UP, -1 or DOWN). desiredFloor is where the passenger wants to go.
    select <id> <floor> - presses floor inside the cabin of elevator id.
    update <id> <currentFloor?> <targetFloors?> - overrides elevator id. targetFloors is a
        comma separated list, e.g. 3,5,-1.
    pending - lists destinations waiting for an elevator at their call floor.

`, nullArg)
}
