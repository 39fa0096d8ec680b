// Package search provides an in-memory, accent-insensitive substring index
// over glossary terms.
package search

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/glosario"
)

// DefaultDelay is the quiet period used by DebouncedSearch.
const DefaultDelay = 300 * time.Millisecond

// Ensure Index implements glosario.TermIndex at compile time.
var _ glosario.TermIndex = (*Index)(nil)

// Index holds the current term collection and answers queries against it.
// The collection is replaced wholesale by UpdateTerms; readers always see
// either the previous or the new collection in full.
type Index struct {
	current   atomic.Pointer[snapshot]
	delay     time.Duration
	debouncer *Debouncer
}

// snapshot is an immutable term collection with its normalized search keys.
type snapshot struct {
	terms []glosario.Term
	keys  []termKey
}

// termKey holds the normalized fields of a term, index-aligned with
// snapshot.terms.
type termKey struct {
	formal     string
	colloquial string
	definition string
}

func (k termKey) contains(q string) bool {
	return strings.Contains(k.formal, q) ||
		strings.Contains(k.colloquial, q) ||
		strings.Contains(k.definition, q)
}

// Option configures an Index.
type Option func(*Index)

// WithDelay sets the quiet period used by DebouncedSearch.
// Defaults to DefaultDelay (300ms) if not specified.
func WithDelay(d time.Duration) Option {
	return func(i *Index) {
		i.delay = d
	}
}

// NewIndex creates an empty Index.
func NewIndex(opts ...Option) *Index {
	i := &Index{delay: DefaultDelay}
	for _, opt := range opts {
		opt(i)
	}
	i.debouncer = NewDebouncer(i.delay)
	i.current.Store(&snapshot{})
	return i
}

// UpdateTerms replaces the indexed collection. The slice is copied, so the
// caller may reuse it afterwards.
func (i *Index) UpdateTerms(terms []glosario.Term) {
	s := &snapshot{
		terms: make([]glosario.Term, len(terms)),
		keys:  make([]termKey, len(terms)),
	}
	copy(s.terms, terms)
	for n, t := range s.terms {
		s.keys[n] = termKey{
			formal:     Normalize(t.FormalTerm),
			colloquial: Normalize(t.ColloquialTerm),
			definition: Normalize(t.Definition),
		}
	}
	i.current.Store(s)
}

// Terms returns a copy of the indexed collection.
func (i *Index) Terms() []glosario.Term {
	s := i.current.Load()
	terms := make([]glosario.Term, len(s.terms))
	copy(terms, s.terms)
	return terms
}

// Len returns the number of indexed terms.
func (i *Index) Len() int {
	return len(i.current.Load().terms)
}

// Search returns the terms whose formal term, colloquial term or definition
// contains query after normalization, in collection order. A blank query,
// or one that normalizes to nothing, matches no terms.
func (i *Index) Search(query string) []glosario.Term {
	results := []glosario.Term{}

	query = strings.TrimSpace(query)
	if query == "" {
		return results
	}
	q := Normalize(query)
	if q == "" {
		return results
	}

	s := i.current.Load()
	for n, key := range s.keys {
		if key.contains(q) {
			results = append(results, s.terms[n])
		}
	}
	return results
}

// FilterByDomain returns the terms whose domain equals domain, ignoring
// case, in collection order. A blank or unknown domain matches no terms.
func (i *Index) FilterByDomain(domain string) []glosario.Term {
	results := []glosario.Term{}

	domain = strings.TrimSpace(domain)
	if domain == "" {
		return results
	}

	s := i.current.Load()
	for _, t := range s.terms {
		if strings.EqualFold(string(t.Domain), domain) {
			results = append(results, t)
		}
	}
	return results
}

// DebouncedSearch runs Search for query once the quiet period has passed
// without another call, then passes the results to fn. Earlier pending
// calls are cancelled and never invoke their callbacks. The search runs
// against the collection current when the period ends.
func (i *Index) DebouncedSearch(query string, fn func([]glosario.Term)) {
	i.debouncer.Trigger(func() {
		fn(i.Search(query))
	})
}

// ClearPending cancels any pending DebouncedSearch without invoking its
// callback.
func (i *Index) ClearPending() {
	i.debouncer.Stop()
}
