package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fwojciec/glosario"
	"github.com/fwojciec/glosario/fs"
	"github.com/fwojciec/glosario/search"
)

// Run executes the browse command.
//
// Each stdin line is a query fed to the debounced search; results are
// printed once typing pauses. ":d <domain>" lists a domain, ":q" quits
// and a blank line discards the pending query.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	if c.Watch && deps.SourceDir == "" {
		err := glosario.Errorf(glosario.EINVALID, "--watch requires a directory source")
		fmt.Fprintf(deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		return err
	}

	catalog, err := loadCatalog(deps)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stderr, "%d terms loaded\n", len(catalog.Terms))

	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()

	b := &browser{deps: deps}
	defer deps.Index.ClearPending()

	if c.Watch {
		reloads := search.NewDebouncer(deps.Debounce)
		defer reloads.Stop()

		go func() {
			err := fs.Watch(ctx, deps.SourceDir, func(glosario.Domain) {
				reloads.Trigger(func() { b.reload(ctx) })
			})
			if err != nil {
				deps.Logger.Error("watch failed", "dir", deps.SourceDir, "error", err)
			}
		}()
	}

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == ":q":
			return nil
		case line == "":
			b.clear()
		case line == ":d" || strings.HasPrefix(line, ":d "):
			b.filter(strings.TrimSpace(strings.TrimPrefix(line, ":d")))
		default:
			b.search(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	b.wait(ctx)
	return nil
}

// browser serializes output from debounced callbacks and the input loop.
type browser struct {
	deps *Dependencies

	mu   sync.Mutex
	seq  uint64        // incremented for every scheduled or cancelled query
	done chan struct{} // closed when the latest scheduled query has printed
}

func (b *browser) search(query string) {
	b.mu.Lock()
	b.seq++
	seq := b.seq
	done := make(chan struct{})
	b.done = done
	b.mu.Unlock()

	b.deps.Index.DebouncedSearch(query, func(terms []glosario.Term) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if seq != b.seq {
			return
		}
		fmt.Fprintf(b.deps.Stdout, "== %q: %d results\n", query, len(terms))
		_ = printTerms(b.deps.Stdout, terms, false)
		close(done)
	})
}

func (b *browser) clear() {
	b.deps.Index.ClearPending()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.seq++
	b.done = nil
}

func (b *browser) filter(name string) {
	b.clear()

	b.mu.Lock()
	defer b.mu.Unlock()

	domain, err := glosario.ParseDomain(name)
	if err != nil {
		fmt.Fprintf(b.deps.Stderr, "error: %s\n", glosario.ErrorMessage(err))
		return
	}
	terms := b.deps.Index.FilterByDomain(string(domain))
	fmt.Fprintf(b.deps.Stdout, "== %s: %d terms\n", domain.DisplayName(), len(terms))
	_ = printTerms(b.deps.Stdout, terms, false)
}

// wait blocks until the latest scheduled query has printed.
func (b *browser) wait(ctx context.Context) {
	b.mu.Lock()
	done := b.done
	b.mu.Unlock()

	if done == nil {
		return
	}
	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (b *browser) reload(ctx context.Context) {
	previous := b.deps.Glossary.Catalog()

	catalog, err := b.deps.Glossary.Reload(ctx)
	if glosario.ErrorCode(err) == glosario.ECONFLICT {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		fmt.Fprintf(b.deps.Stderr, "error: reload failed, keeping previous terms: %s\n", glosario.ErrorMessage(err))
		return
	}
	warnFailures(b.deps, catalog)
	if previous != nil && previous.Fingerprint == catalog.Fingerprint {
		return
	}
	fmt.Fprintf(b.deps.Stderr, "reloaded: %d terms\n", len(catalog.Terms))
}
