package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/glosario"
)

// Ensure LoggingCatalogLoader implements glosario.CatalogLoader.
var _ glosario.CatalogLoader = (*LoggingCatalogLoader)(nil)

// LoggingCatalogLoader wraps a CatalogLoader with logging.
type LoggingCatalogLoader struct {
	next   glosario.CatalogLoader
	logger *slog.Logger
}

// NewLoggingCatalogLoader creates a new LoggingCatalogLoader.
func NewLoggingCatalogLoader(next glosario.CatalogLoader, logger *slog.Logger) *LoggingCatalogLoader {
	return &LoggingCatalogLoader{next: next, logger: logger}
}

// LoadAll delegates to the wrapped loader and logs the outcome.
func (l *LoggingCatalogLoader) LoadAll(ctx context.Context) (catalog *glosario.Catalog, err error) {
	defer func(begin time.Time) {
		if err != nil {
			l.logger.Error("catalog load",
				"code", glosario.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		l.logger.Info("catalog load",
			"load_id", catalog.LoadID,
			"terms", len(catalog.Terms),
			"failed", len(catalog.Failures),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return l.next.LoadAll(ctx)
}
