package taxonomy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the overlay whenever the file is replaced or written by
// another process. Writes made by this store are recognized by digest and
// skipped. Watch blocks until ctx is done.
func (s *Store) Watch(ctx context.Context) error {
	if s.path == "" {
		<-ctx.Done()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("taxonomy: create watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: atomic renames replace the inode, which would
	// silently end a watch placed on the file itself.
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("taxonomy: create %s: %w", dir, err)
	}
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("taxonomy: watch %s: %w", dir, err)
	}
	name := filepath.Clean(s.path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != name {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if err := s.Reload(ctx); err != nil {
				s.l.Warnf(ctx, "taxonomy.Watch: reload: %v", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.l.Errorf(ctx, "taxonomy.Watch: %v", err)
		}
	}
}
