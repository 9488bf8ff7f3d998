package main

import (
	"fmt"

	"github.com/fwojciec/plss"
)

// Run executes the link command.
func (c *LinkCmd) Run(deps *Dependencies) error {
	result, err := deps.Linker.LinkDocument(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}

	if !result.Matched() {
		fmt.Fprintf(deps.Stdout, "No property or well matched document %s\n", c.ID)
		return nil
	}
	if result.PropertyID != nil {
		fmt.Fprintf(deps.Stdout, "Property: %s\n", *result.PropertyID)
	}
	if result.WellID != nil {
		fmt.Fprintf(deps.Stdout, "Well:     %s\n", *result.WellID)
	}
	return nil
}

// Run executes the relink command.
func (c *RelinkCmd) Run(deps *Dependencies) error {
	summary, err := deps.Relinker.RelinkAll(deps.Ctx)
	if summary != nil {
		fmt.Fprintf(deps.Stdout, "Documents: %d  linked: %d  unmatched: %d  failed: %d\n",
			summary.Total, summary.Linked, summary.Unmatched, summary.Failed)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}
	return nil
}
