package main_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/glosario"
	main "github.com/fwojciec/glosario/cmd/glosario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseCmd_Run(t *testing.T) {
	t.Parallel()

	payloads := map[glosario.Domain]string{
		glosario.DomainComputing: computingJSON,
		glosario.DomainHealth:    healthJSON,
	}

	t.Run("prints only the last query of a burst", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t, writeSource(t, payloads))
		deps.Stdin = strings.NewReader("d\ndi\ncefalea\n")

		err := (&main.BrowseCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "3 terms loaded")
		assert.Equal(t, 1, strings.Count(stdout.String(), "=="))
		assert.Contains(t, stdout.String(), `== "cefalea": 1 results`)
	})

	t.Run("blank line discards the pending query", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, writeSource(t, payloads))
		deps.Stdin = strings.NewReader("disco\n\n")

		err := (&main.BrowseCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("lists a domain and quits", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps(t, writeSource(t, payloads))
		deps.Stdin = strings.NewReader(":d informatica\n:q\ncefalea\n")

		err := (&main.BrowseCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "== Informática: 2 terms")
		assert.NotContains(t, stdout.String(), "Cefalea")
	})

	t.Run("reports unknown domain and continues", func(t *testing.T) {
		t.Parallel()

		deps, stdout, stderr := newDeps(t, writeSource(t, payloads))
		deps.Stdin = strings.NewReader(":d astronomia\nraton\n")

		err := (&main.BrowseCmd{}).Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), `unknown domain "astronomia"`)
		assert.Contains(t, stdout.String(), "Ratón")
	})

	t.Run("watch requires a directory source", func(t *testing.T) {
		t.Parallel()

		deps, _, _ := newDeps(t, writeSource(t, payloads))
		deps.SourceDir = ""

		err := (&main.BrowseCmd{Watch: true}).Run(deps)

		assert.Equal(t, glosario.EINVALID, glosario.ErrorCode(err))
	})
}
