package main

import (
	"fmt"

	"github.com/fwojciec/plss"
)

// Run executes the locate command.
func (c *LocateCmd) Run(deps *Dependencies) error {
	req := plss.CoordinateRequest{
		APINumber: c.API,
		Section:   c.Section,
		Township:  c.Township,
		Range:     c.Range,
		County:    c.County,
		Meridian:  c.Meridian,
	}
	if req == (plss.CoordinateRequest{}) {
		err := plss.Errorf(plss.EINVALID, "provide --api, a section with --township and --range, or --county")
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}

	result := deps.Resolver.ResolveCoordinate(deps.Ctx, req)
	if result == nil {
		err := plss.Errorf(plss.ENOTFOUND, "no coordinate could be resolved")
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%.6f, %.6f  %s", result.Latitude, result.Longitude, result.Precision)
	if result.Geohash != "" {
		fmt.Fprintf(deps.Stdout, "  %s", result.Geohash)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
