package glosario

import "context"

// SourceFetcher retrieves the raw JSON payload of a domain's term list.
type SourceFetcher interface {
	// FetchDomain returns the raw payload for the domain.
	// Returns ENOTFOUND if the domain has no source, ESTATUS if the source
	// answered with an error status and ETRANSPORT if it could not be reached.
	FetchDomain(ctx context.Context, domain Domain) ([]byte, error)
}
