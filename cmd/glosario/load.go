package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/glosario"
)

// loadCatalog reloads the glossary and reports failed domains on stderr.
// A total failure is returned with a retry hint.
func loadCatalog(deps *Dependencies) (*glosario.Catalog, error) {
	catalog, err := deps.Glossary.Reload(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		if glosario.ErrorCode(err) == glosario.ETOTALFAILURE {
			fmt.Fprintln(deps.Stderr, "Hint: check --source and run the command again to retry")
		}
		return nil, err
	}
	warnFailures(deps, catalog)
	return catalog, nil
}

func warnFailures(deps *Dependencies, catalog *glosario.Catalog) {
	failed := catalog.FailedDomains()
	if len(failed) == 0 {
		return
	}
	names := make([]string, len(failed))
	for i, d := range failed {
		names[i] = d.DisplayName()
	}
	fmt.Fprintf(deps.Stderr, "warning: some domains could not be loaded: %s\n", strings.Join(names, ", "))
}
