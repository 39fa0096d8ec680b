package mock

import (
	"context"

	"github.com/fwojciec/glosario"
)

var _ glosario.SourceFetcher = (*SourceFetcher)(nil)

// SourceFetcher is a mock implementation of glosario.SourceFetcher.
type SourceFetcher struct {
	FetchDomainFn func(ctx context.Context, domain glosario.Domain) ([]byte, error)
}

func (f *SourceFetcher) FetchDomain(ctx context.Context, domain glosario.Domain) ([]byte, error) {
	return f.FetchDomainFn(ctx, domain)
}
