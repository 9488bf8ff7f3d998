package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/plss"
)

// Run executes the parse command.
func (c *ParseCmd) Run(deps *Dependencies) error {
	text := strings.Join(c.Text, " ")
	desc := plss.ParseAllLegalDescriptions(text)
	if desc == nil {
		err := plss.Errorf(plss.ENOTFOUND, "no legal description found")
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}

	for i, loc := range desc.All() {
		role := "additional"
		if i == 0 {
			role = "primary"
		}
		line := fmt.Sprintf("%-10s  %s", role, loc)
		if loc.County != "" {
			line += "  " + loc.County + " County"
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
