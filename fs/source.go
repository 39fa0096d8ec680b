// Package fs provides file-based glossary sources and atomic export files.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/glosario"
)

// Ensure SourceFetcher implements glosario.SourceFetcher at compile time.
var _ glosario.SourceFetcher = (*SourceFetcher)(nil)

// SourceFetcher reads domain payloads from <dir>/<domain>.json.
type SourceFetcher struct {
	dir string
}

// NewSourceFetcher creates a SourceFetcher reading from dir.
func NewSourceFetcher(dir string) *SourceFetcher {
	return &SourceFetcher{dir: dir}
}

// Path returns the file holding the domain's payload.
func (f *SourceFetcher) Path(domain glosario.Domain) string {
	return filepath.Join(f.dir, string(domain)+".json")
}

// FetchDomain reads the domain's payload.
// A missing file maps to ENOTFOUND and any other read failure to ETRANSPORT.
func (f *SourceFetcher) FetchDomain(ctx context.Context, domain glosario.Domain) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, glosario.Errorf(glosario.ETRANSPORT, "read %s: %v", domain, err)
	}

	path := f.Path(domain)
	raw, err := os.ReadFile(path)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, glosario.Errorf(glosario.ENOTFOUND, "source for %s not found at %s", domain, path)
	} else if err != nil {
		return nil, glosario.Errorf(glosario.ETRANSPORT, "read %s: %v", path, err)
	}
	return raw, nil
}
