// Package slog provides log/slog decorators for glosario services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/glosario"
)

// Ensure LoggingSourceFetcher implements glosario.SourceFetcher.
var _ glosario.SourceFetcher = (*LoggingSourceFetcher)(nil)

// LoggingSourceFetcher wraps a SourceFetcher with debug logging.
type LoggingSourceFetcher struct {
	next   glosario.SourceFetcher
	logger *slog.Logger
}

// NewLoggingSourceFetcher creates a new LoggingSourceFetcher.
func NewLoggingSourceFetcher(next glosario.SourceFetcher, logger *slog.Logger) *LoggingSourceFetcher {
	return &LoggingSourceFetcher{next: next, logger: logger}
}

// FetchDomain delegates to the wrapped fetcher and logs the operation.
func (f *LoggingSourceFetcher) FetchDomain(ctx context.Context, domain glosario.Domain) (raw []byte, err error) {
	defer func(begin time.Time) {
		f.logger.Debug("fetch domain",
			"domain", domain,
			"bytes", len(raw),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchDomain(ctx, domain)
}
