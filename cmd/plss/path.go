package main

import (
	"fmt"

	"github.com/fwojciec/plss"
)

// Run executes the path command.
func (c *PathCmd) Run(deps *Dependencies) error {
	bore, err := c.trace()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plss.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Length:   %d ft\n", bore.Length)
	if bore.Bearing != "" {
		fmt.Fprintf(deps.Stdout, "Bearing:  %s\n", bore.Bearing)
	}
	fmt.Fprintf(deps.Stdout, "Sections: %d\n", len(bore.Sections))
	for _, s := range bore.Sections {
		fmt.Fprintf(deps.Stdout, "  %s\n", s)
	}
	return nil
}

func (c *PathCmd) trace() (*plss.Wellbore, error) {
	surface, err := parseSection(c.Surface)
	if err != nil {
		return nil, err
	}
	bottom, err := parseSection(c.Bottom)
	if err != nil {
		return nil, err
	}
	return plss.TraceWellbore(surface, bottom)
}
