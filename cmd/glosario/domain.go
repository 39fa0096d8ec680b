package main

import (
	"fmt"

	"github.com/fwojciec/glosario"
)

// Run executes the domain command.
func (c *DomainCmd) Run(deps *Dependencies) error {
	domain, err := glosario.ParseDomain(c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		return err
	}

	catalog, err := loadCatalog(deps)
	if err != nil {
		return err
	}

	for _, f := range catalog.Failures {
		if f.Domain == domain {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", domain.DisplayName(), glosario.ErrorMessage(f.Err))
			return f.Err
		}
	}

	return printTerms(deps.Stdout, deps.Index.FilterByDomain(string(domain)), c.JSON)
}
