package catalog

import (
	"context"
	"sync"

	"github.com/fwojciec/glosario"
	"github.com/google/uuid"
)

// Glossary keeps a TermIndex in sync with the most recent catalog load.
// Only the result of the latest Reload is applied; a load that was
// superseded while in flight is discarded.
type Glossary struct {
	Loader glosario.CatalogLoader
	Index  glosario.TermIndex

	mu      sync.Mutex
	latest  string
	catalog *glosario.Catalog
}

// NewGlossary creates a Glossary that loads with loader into index.
func NewGlossary(loader glosario.CatalogLoader, index glosario.TermIndex) *Glossary {
	return &Glossary{Loader: loader, Index: index}
}

// Reload loads a fresh catalog and swaps it into the index.
// On failure the previously applied catalog stays in place.
// Returns ECONFLICT if a newer Reload started before this one finished.
func (g *Glossary) Reload(ctx context.Context) (*glosario.Catalog, error) {
	token := uuid.New().String()
	g.mu.Lock()
	g.latest = token
	g.mu.Unlock()

	catalog, err := g.Loader.LoadAll(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.latest != token {
		return nil, glosario.Errorf(glosario.ECONFLICT, "load superseded by a newer reload")
	}
	if err != nil {
		return nil, err
	}

	g.Index.UpdateTerms(catalog.Terms)
	g.catalog = catalog
	return catalog, nil
}

// Catalog returns the most recently applied catalog, or nil if no load
// has succeeded yet.
func (g *Glossary) Catalog() *glosario.Catalog {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.catalog
}
