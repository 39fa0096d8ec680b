package main

import (
	"fmt"

	"github.com/fwojciec/glosario"
)

// Run executes the theme command.
func (c *ThemeCmd) Run(deps *Dependencies) error {
	if c.Value != "" && c.Toggle {
		err := glosario.Errorf(glosario.EINVALID, "cannot set a theme and toggle at the same time")
		fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		return err
	}

	var theme glosario.Theme
	switch {
	case c.Value != "":
		t, err := glosario.ParseTheme(c.Value)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
			return err
		}
		theme = t
	case c.Toggle:
		current, err := deps.Preferences.Theme(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
			return err
		}
		theme = current.Toggle()
	default:
		current, err := deps.Preferences.Theme(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, current)
		return nil
	}

	if err := deps.Preferences.SetTheme(deps.Ctx, theme); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Theme set to %s\n", theme)
	return nil
}
