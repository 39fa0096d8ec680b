// Package catalog loads per-domain term lists into a merged, validated
// catalog and keeps a search index in sync with the most recent load.
package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/glosario"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Ensure Loader implements glosario.CatalogLoader at compile time.
var _ glosario.CatalogLoader = (*Loader)(nil)

// Loader fetches every domain concurrently and merges the valid records.
// A failing domain never aborts the others.
type Loader struct {
	Sources glosario.SourceFetcher

	// Domains restricts the loaded set. Defaults to glosario.Domains().
	Domains []glosario.Domain

	// Concurrency limits in-flight fetches. Defaults to one per domain.
	Concurrency int

	// RetryDelays are the backoff delays for transport failures.
	// Nil uses DefaultRetryDelays; an empty non-nil slice disables retries.
	RetryDelays []time.Duration

	// Logger receives dropped-record and failed-domain diagnostics.
	Logger *slog.Logger
}

// domainResult holds the outcome of loading a single domain.
type domainResult struct {
	terms []glosario.Term
	raw   []byte
	err   error
}

// LoadAll loads every domain and merges the valid terms in domain order,
// then source order, regardless of which fetch finished first. Domains
// that fail are listed in Catalog.Failures. Returns ETOTALFAILURE if no
// domain produced a term.
func (l *Loader) LoadAll(ctx context.Context) (*glosario.Catalog, error) {
	domains := l.Domains
	if len(domains) == 0 {
		domains = glosario.Domains()
	}

	concurrency := l.Concurrency
	if concurrency <= 0 {
		concurrency = len(domains)
	}

	// Workers never return an error so that every domain settles.
	results := make([]domainResult, len(domains))
	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, domain := range domains {
		g.Go(func() error {
			terms, raw, err := l.loadDomain(ctx, domain)
			results[i] = domainResult{terms: terms, raw: raw, err: err}
			return nil
		})
	}
	_ = g.Wait()

	catalog := &glosario.Catalog{LoadID: uuid.New().String()}
	h := xxhash.New()
	for i, r := range results {
		domain := domains[i]
		if r.err != nil {
			l.logger().Warn("domain failed to load",
				"domain", domain,
				"code", glosario.ErrorCode(r.err),
				"err", r.err,
			)
			catalog.Failures = append(catalog.Failures, glosario.DomainFailure{Domain: domain, Err: r.err})
			continue
		}
		catalog.Terms = append(catalog.Terms, r.terms...)
		_, _ = h.WriteString(string(domain))
		_, _ = h.Write(r.raw)
	}
	catalog.Fingerprint = h.Sum64()

	if len(catalog.Terms) == 0 {
		return nil, glosario.Errorf(glosario.ETOTALFAILURE,
			"glossary could not be loaded: %d of %d domains failed", len(catalog.Failures), len(domains))
	}
	return catalog, nil
}

// LoadDomain fetches and validates a single domain's terms in source order.
// Invalid records are dropped and logged. Returns ENOTFOUND, ESTATUS or
// ETRANSPORT for fetch failures, EFORMAT if the payload is not a JSON list
// and EEMPTY if no record is valid.
func (l *Loader) LoadDomain(ctx context.Context, domain glosario.Domain) ([]glosario.Term, error) {
	terms, _, err := l.loadDomain(ctx, domain)
	return terms, err
}

func (l *Loader) loadDomain(ctx context.Context, domain glosario.Domain) ([]glosario.Term, []byte, error) {
	if !domain.Valid() {
		return nil, nil, glosario.Errorf(glosario.EINVALID, "unknown domain %q", domain)
	}

	delays := l.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	raw, err := FetchWithRetryDelays(ctx, domain, l.Sources.FetchDomain, l.logger(), delays)
	if err != nil {
		return nil, nil, err
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, nil, glosario.Errorf(glosario.EFORMAT, "%s: invalid JSON: %v", domain, err)
	}
	records, ok := payload.([]any)
	if !ok {
		return nil, nil, glosario.Errorf(glosario.EFORMAT, "%s: payload is not a list of records", domain)
	}

	terms := make([]glosario.Term, 0, len(records))
	for n, record := range records {
		term, err := glosario.ParseTerm(record, domain)
		if err != nil {
			l.logger().Warn("dropped invalid record",
				"domain", domain,
				"index", n,
				"reason", glosario.ErrorMessage(err),
			)
			continue
		}
		terms = append(terms, term)
	}

	if len(terms) == 0 {
		return nil, nil, glosario.Errorf(glosario.EEMPTY, "%s: no valid records among %d", domain, len(records))
	}
	return terms, raw, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}
