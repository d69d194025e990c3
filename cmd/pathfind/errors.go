package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/graphfile"
	"github.com/katalvlaran/pathfind/search"
	"github.com/katalvlaran/pathfind/store"
)

// Process exit codes.
const (
	exitOK        = 0
	exitFailure   = 1
	exitMalformed = 2
	exitInternal  = 3
)

// errNoGraphSource means neither --graph nor a database graph was given.
var errNoGraphSource = errors.New("no graph: pass --graph FILE or --db-dsn DSN --name NAME")

// malformed lists the errors that describe a bad graph rather than a bad
// invocation or a bug.
var malformed = []error{
	graphfile.ErrMalformed,
	core.ErrInvalidWeight,
	core.ErrEmptyPosition,
	core.ErrDimensionMismatch,
	core.ErrInvalidCoordinate,
	store.ErrCorrupt,
}

// describe maps err to an exit code and the message printed on stderr.
func describe(err error) (int, string) {
	if errors.Is(err, search.ErrInternalConsistency) {
		return exitInternal, fmt.Sprintf("internal error: %v", err)
	}
	for _, target := range malformed {
		if errors.Is(err, target) {
			return exitMalformed, fmt.Sprintf("malformed graph: %v", err)
		}
	}

	return exitFailure, fmt.Sprintf("error: %v", err)
}

// noPathMessage is printed when the goal cannot be reached from the start.
func noPathMessage(from, to string) string {
	return fmt.Sprintf("no path found between %s and %s", from, to)
}
