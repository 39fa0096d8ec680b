package main

import (
	"fmt"

	"github.com/fwojciec/glosario"
)

// Run executes the domains command.
func (c *DomainsCmd) Run(deps *Dependencies) error {
	for _, d := range glosario.Domains() {
		fmt.Fprintf(deps.Stdout, "%-16s %s\n", d, d.DisplayName())
	}
	return nil
}
