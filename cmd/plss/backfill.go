package main

import (
	"fmt"

	"github.com/fwojciec/plss"
)

// Run executes the backfill command.
func (c *BackfillCmd) Run(deps *Dependencies) error {
	summary, err := deps.Backfiller.Backfill(deps.Ctx)
	if summary != nil {
		fmt.Fprintf(deps.Stdout, "Documents: %d  resolved: %d  unresolved: %d  failed: %d\n",
			summary.Total, summary.Resolved, summary.Unresolved, summary.Failed)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}
	return nil
}
