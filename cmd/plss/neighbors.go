package main

import (
	"fmt"

	"github.com/fwojciec/plss"
)

// Run executes the neighbors command.
func (c *NeighborsCmd) Run(deps *Dependencies) error {
	loc, err := parseSection(c.TRS)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}
	if c.Radius < 1 {
		err := plss.Errorf(plss.EINVALID, "radius must be at least 1")
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}

	if c.Radius == 1 {
		for _, n := range plss.Neighbors(loc) {
			fmt.Fprintf(deps.Stdout, "%-2s  %s\n", n.Direction, n.Location)
		}
		return nil
	}
	for _, n := range plss.ExtendedNeighbors(loc, c.Radius) {
		fmt.Fprintln(deps.Stdout, n)
	}
	return nil
}

// parseSection parses a single TRS argument such as "S14-T5N-R4W".
func parseSection(s string) (plss.Location, error) {
	loc, ok := plss.ParseLocation(s)
	if !ok {
		return plss.Location{}, plss.Errorf(plss.EINVALID, "unrecognized section %q (expected e.g. S14-T5N-R4W)", s)
	}
	return loc, nil
}
