package mock

import (
	"context"

	"github.com/fwojciec/glosario"
)

var _ glosario.CatalogLoader = (*CatalogLoader)(nil)

// CatalogLoader is a mock implementation of glosario.CatalogLoader.
type CatalogLoader struct {
	LoadAllFn func(ctx context.Context) (*glosario.Catalog, error)
}

func (l *CatalogLoader) LoadAll(ctx context.Context) (*glosario.Catalog, error) {
	return l.LoadAllFn(ctx)
}

var _ glosario.TermIndex = (*TermIndex)(nil)

// TermIndex is a mock implementation of glosario.TermIndex.
type TermIndex struct {
	UpdateTermsFn    func(terms []glosario.Term)
	SearchFn         func(query string) []glosario.Term
	FilterByDomainFn func(domain string) []glosario.Term
	LenFn            func() int
}

func (i *TermIndex) UpdateTerms(terms []glosario.Term) {
	i.UpdateTermsFn(terms)
}

func (i *TermIndex) Search(query string) []glosario.Term {
	return i.SearchFn(query)
}

func (i *TermIndex) FilterByDomain(domain string) []glosario.Term {
	return i.FilterByDomainFn(domain)
}

func (i *TermIndex) Len() int {
	return i.LenFn()
}
