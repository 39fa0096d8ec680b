package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/glosario"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if _, err := loadCatalog(deps); err != nil {
		return err
	}
	return printTerms(deps.Stdout, deps.Index.Search(c.Query), c.JSON)
}

// printTerms writes terms as a text listing or a JSON array.
func printTerms(w io.Writer, terms []glosario.Term, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(terms)
	}

	if len(terms) == 0 {
		fmt.Fprintln(w, "No terms found.")
		return nil
	}

	for _, t := range terms {
		fmt.Fprintf(w, "%s (%s) [%s]\n", t.FormalTerm, t.ColloquialTerm, t.Domain.DisplayName())
		if t.Definition != "" {
			fmt.Fprintf(w, "  %s\n", t.Definition)
		}
		fmt.Fprintf(w, "  > %s\n", t.UsageExample)
	}
	return nil
}
