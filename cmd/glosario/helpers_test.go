package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/glosario"
	"github.com/fwojciec/glosario/catalog"
	main "github.com/fwojciec/glosario/cmd/glosario"
	"github.com/fwojciec/glosario/fs"
	"github.com/fwojciec/glosario/search"
	"github.com/stretchr/testify/require"
)

const computingJSON = `[
	{"formal_term": "Disco duro", "colloquial_term": "Disco", "definition": "Dispositivo de almacenamiento", "usage_example": "Guardé el archivo en el disco duro."},
	{"formal_term": "Ratón", "colloquial_term": "Mouse", "usage_example": "Mueve el ratón."}
]`

const healthJSON = `[
	{"formal_term": "Cefalea", "colloquial_term": "Dolor de cabeza", "definition": "Dolor localizado en la cabeza", "usage_example": "Tengo cefalea desde ayer."}
]`

// writeSource writes domain payloads into a temporary directory.
func writeSource(t *testing.T, payloads map[glosario.Domain]string) string {
	t.Helper()

	dir := t.TempDir()
	for d, body := range payloads {
		require.NoError(t, os.WriteFile(filepath.Join(dir, string(d)+".json"), []byte(body), 0644))
	}
	return dir
}

// newDeps wires a glossary reading from dir with output captured in buffers.
func newDeps(t *testing.T, dir string) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	index := search.NewIndex(search.WithDelay(10 * time.Millisecond))
	loader := &catalog.Loader{
		Sources:     fs.NewSourceFetcher(dir),
		RetryDelays: []time.Duration{},
	}

	return &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    slog.New(slog.DiscardHandler),
		Glossary:  catalog.NewGlossary(loader, index),
		Index:     index,
		SourceDir: dir,
		Debounce:  10 * time.Millisecond,
	}, stdout, stderr
}
