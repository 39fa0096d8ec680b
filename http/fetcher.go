// Package http provides an HTTP-based implementation of glosario.SourceFetcher
// that retrieves each domain's term list as <base>/<domain>.json.
package http

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/glosario"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// maxPayloadBytes caps the size of a single domain payload.
const maxPayloadBytes = 8 << 20

// Ensure SourceFetcher implements glosario.SourceFetcher at compile time.
var _ glosario.SourceFetcher = (*SourceFetcher)(nil)

// SourceFetcher retrieves domain payloads from a static file server.
type SourceFetcher struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a SourceFetcher.
type Option func(*SourceFetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *SourceFetcher) {
		f.timeout = d
	}
}

// WithRateLimiter paces requests through the given limiter.
func WithRateLimiter(l *rate.Limiter) Option {
	return func(f *SourceFetcher) {
		f.limiter = l
	}
}

// NewSourceFetcher creates a SourceFetcher serving domains from baseURL.
func NewSourceFetcher(baseURL string, opts ...Option) *SourceFetcher {
	f := &SourceFetcher{
		baseURL: baseURL,
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// URL returns the address of the domain's payload.
func (f *SourceFetcher) URL(domain glosario.Domain) (string, error) {
	u, err := url.JoinPath(f.baseURL, string(domain)+".json")
	if err != nil {
		return "", glosario.Errorf(glosario.EINVALID, "invalid source URL %q: %v", f.baseURL, err)
	}
	return u, nil
}

// FetchDomain retrieves the raw payload for the domain.
// A 404 maps to ENOTFOUND, any other non-2xx status to ESTATUS, and
// failures to reach the server or read the body to ETRANSPORT.
func (f *SourceFetcher) FetchDomain(ctx context.Context, domain glosario.Domain) ([]byte, error) {
	u, err := f.URL(domain)
	if err != nil {
		return nil, err
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, glosario.Errorf(glosario.ETRANSPORT, "fetch %s: %v", u, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, glosario.Errorf(glosario.EINVALID, "build request for %s: %v", u, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, glosario.Errorf(glosario.ETRANSPORT, "fetch %s: %v", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, glosario.Errorf(glosario.ENOTFOUND, "source for %s not found at %s", domain, u)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, glosario.Errorf(glosario.ESTATUS, "HTTP %d for %s", resp.StatusCode, u)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, glosario.Errorf(glosario.ETRANSPORT, "read %s: %v", u, err)
	}

	return body, nil
}
