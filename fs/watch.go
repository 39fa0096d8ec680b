package fs

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/glosario"
)

// Watch calls fn whenever the payload file of a known domain in dir is
// created, written, removed or renamed. It blocks until ctx is done, then
// returns nil, or returns the first watcher error.
func Watch(ctx context.Context, dir string, fn func(glosario.Domain)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if domain, ok := watchedDomain(event); ok {
				fn(domain)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// watchedDomain returns the domain whose payload the event touches.
// Chmod-only events and files that are not domain payloads are ignored.
func watchedDomain(event fsnotify.Event) (glosario.Domain, bool) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return "", false
	}
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, ".json") {
		return "", false
	}
	domain := glosario.Domain(strings.TrimSuffix(name, ".json"))
	if !domain.Valid() {
		return "", false
	}
	return domain, true
}
