package main

import (
	"fmt"
	"io"

	"github.com/fwojciec/glosario"
	"github.com/fwojciec/glosario/etree"
	"github.com/fwojciec/glosario/fs"
	"github.com/fwojciec/glosario/html"
)

const exportTitle = "Glosario"

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	title := exportTitle
	var domain glosario.Domain
	if c.Domain != "" {
		d, err := glosario.ParseDomain(c.Domain)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
			return err
		}
		domain = d
		title = exportTitle + ": " + d.DisplayName()
	}

	if _, err := loadCatalog(deps); err != nil {
		return err
	}

	terms := deps.Index.Terms()
	if domain != "" {
		terms = deps.Index.FilterByDomain(string(domain))
	}

	theme := glosario.DefaultTheme
	if c.Format == "html" && deps.Preferences != nil {
		t, err := deps.Preferences.Theme(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
			return err
		}
		theme = t
	}

	encode := func(w io.Writer) error {
		if c.Format == "html" {
			return html.NewRenderer(theme).RenderPage(w, title, terms)
		}
		return etree.Encode(w, title, terms)
	}

	if c.Output == "" || c.Output == "-" {
		return encode(deps.Stdout)
	}

	f, err := fs.CreateAtomic(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		return err
	}
	if err := encode(f); err != nil {
		_ = f.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		return err
	}
	if err := f.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Exported %d terms to %s\n", len(terms), c.Output)
	return nil
}
