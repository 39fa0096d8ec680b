package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/glosario"
)

// FetchFunc is the signature for a domain fetch function.
type FetchFunc func(ctx context.Context, domain glosario.Domain) ([]byte, error)

// DefaultRetryDelays returns the backoff delays for transport retries: 250ms, 500ms, 1s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, 1 * time.Second}
}

// FetchWithRetryDelays fetches a domain, retrying transport failures after
// each of the given delays. Other failures (missing source, error status)
// are returned immediately. The logger, if provided, receives a debug
// record for each retry.
func FetchWithRetryDelays(ctx context.Context, domain glosario.Domain, fetch FetchFunc, logger *slog.Logger, delays []time.Duration) ([]byte, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		raw, err := fetch(ctx, domain)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		if glosario.ErrorCode(err) != glosario.ETRANSPORT {
			break
		}
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Debug("retry domain fetch",
				"domain", domain,
				"attempt", attempt+2,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return nil, glosario.Errorf(glosario.ETRANSPORT, "fetch %s: %v", domain, ctx.Err())
		case <-time.After(delays[attempt]):
		}
	}

	return nil, lastErr
}
