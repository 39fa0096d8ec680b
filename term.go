package glosario

import (
	"context"
	"strings"
)

// Term represents one glossary entry: a formal term, its regional colloquial
// equivalent, an optional definition and a usage example.
type Term struct {
	FormalTerm     string `json:"formal_term"`
	ColloquialTerm string `json:"colloquial_term"`
	Definition     string `json:"definition,omitempty"`
	UsageExample   string `json:"usage_example"`
	Domain         Domain `json:"domain"`
}

// Validate returns an error if the term contains invalid fields.
func (t *Term) Validate() error {
	if strings.TrimSpace(t.FormalTerm) == "" {
		return Errorf(EINVALID, "term formal_term required")
	}
	if strings.TrimSpace(t.ColloquialTerm) == "" {
		return Errorf(EINVALID, "term colloquial_term required")
	}
	if strings.TrimSpace(t.UsageExample) == "" {
		return Errorf(EINVALID, "term usage_example required")
	}
	if !t.Domain.Valid() {
		return Errorf(EINVALID, "term domain %q unknown", t.Domain)
	}
	return nil
}

// requiredFields are the record keys that must hold non-blank strings.
var requiredFields = []string{"formal_term", "colloquial_term", "usage_example"}

// ValidateTermSchema checks a decoded JSON record against the term schema.
// The record must be an object whose formal_term, colloquial_term and
// usage_example are non-blank strings. A definition, if present, must be a
// string but may be empty. Returns EINVALID naming the first offending field.
func ValidateTermSchema(record any) error {
	obj, ok := record.(map[string]any)
	if !ok || obj == nil {
		return Errorf(EINVALID, "record is not an object")
	}
	for _, field := range requiredFields {
		v, ok := obj[field]
		if !ok {
			return Errorf(EINVALID, "record missing %s", field)
		}
		s, ok := v.(string)
		if !ok {
			return Errorf(EINVALID, "record %s is not a string", field)
		}
		if strings.TrimSpace(s) == "" {
			return Errorf(EINVALID, "record %s is blank", field)
		}
	}
	if v, ok := obj["definition"]; ok {
		if _, ok := v.(string); !ok {
			return Errorf(EINVALID, "record definition is not a string")
		}
	}
	return nil
}

// ParseTerm validates a decoded JSON record and converts it to a Term
// tagged with the given domain.
func ParseTerm(record any, domain Domain) (Term, error) {
	if err := ValidateTermSchema(record); err != nil {
		return Term{}, err
	}
	obj := record.(map[string]any)
	definition, _ := obj["definition"].(string)
	return Term{
		FormalTerm:     obj["formal_term"].(string),
		ColloquialTerm: obj["colloquial_term"].(string),
		Definition:     definition,
		UsageExample:   obj["usage_example"].(string),
		Domain:         domain,
	}, nil
}

// DomainFailure records a domain whose source could not be loaded.
type DomainFailure struct {
	Domain Domain
	Err    error
}

// Catalog is the merged, domain-tagged term collection produced by one load.
// A Catalog is never modified after it is returned.
type Catalog struct {
	// Terms in domain load order, then source order.
	Terms []Term

	// Failures lists domains that failed to load, in load order.
	Failures []DomainFailure

	// LoadID uniquely identifies the load that produced this catalog.
	LoadID string

	// Fingerprint is a hash over the raw source payloads of loaded domains.
	Fingerprint uint64
}

// FailedDomains returns the domains that failed to load.
func (c *Catalog) FailedDomains() []Domain {
	domains := make([]Domain, 0, len(c.Failures))
	for _, f := range c.Failures {
		domains = append(domains, f.Domain)
	}
	return domains
}

// CatalogLoader loads the merged term collection from per-domain sources.
type CatalogLoader interface {
	// LoadAll loads every domain and merges the results.
	// Individual domain failures are reported in Catalog.Failures.
	// Returns ETOTALFAILURE if no domain produced any term.
	LoadAll(ctx context.Context) (*Catalog, error)
}

// TermIndex answers search and filter queries over a term collection.
type TermIndex interface {
	// UpdateTerms replaces the indexed collection.
	UpdateTerms(terms []Term)

	// Search returns terms whose formal term, colloquial term or definition
	// contains the query, ignoring case and accents.
	Search(query string) []Term

	// FilterByDomain returns terms belonging to the domain, ignoring case.
	FilterByDomain(domain string) []Term

	// Len returns the number of indexed terms.
	Len() int
}
