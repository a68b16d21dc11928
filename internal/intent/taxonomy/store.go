package taxonomy

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"intent-engine/pkg/log"
)

// Options configures a Store.
type Options struct {
	// OverlayPath is the JSON file holding learned keywords. Empty keeps the
	// overlay in memory only.
	OverlayPath string
	Limits      Limits
	// Defaults overrides the embedded built-in taxonomy (tests).
	Defaults *Defaults
}

// Store owns the taxonomy. Readers call Snapshot; the learner is the only
// writer and goes through Update, which publishes a new snapshot
// copy-on-write and persists it afterwards.
type Store struct {
	l        log.Logger
	defaults *Defaults
	path     string
	limits   Limits

	current atomic.Pointer[Snapshot]

	mu         sync.Mutex // serializes writers and reloads
	lastDigest [sha256.Size]byte
}

// New loads the defaults and the overlay file. A missing or malformed
// overlay is logged and the store starts from the defaults alone.
func New(ctx context.Context, l log.Logger, opt Options) (*Store, error) {
	d := opt.Defaults
	if d == nil {
		var err error
		if d, err = LoadDefaults(); err != nil {
			return nil, err
		}
	}

	s := &Store{
		l:        l,
		defaults: d,
		path:     opt.OverlayPath,
		limits:   opt.Limits.withDefaults(),
	}

	ov, digest := s.readOverlay(ctx)
	snap, dropped := buildSnapshot(d, ov, s.limits, 1)
	s.logDropped(ctx, dropped)
	s.lastDigest = digest
	s.current.Store(snap)

	l.Infof(ctx, "taxonomy.New: loaded %d tasks, %d learned keywords", len(snap.tasks), snap.overlay.Size())
	return s, nil
}

// Snapshot returns the current immutable taxonomy state.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Path returns the overlay file path.
func (s *Store) Path() string { return s.path }

// Update runs fn against a private copy of the overlay. If fn changed
// anything, a new snapshot is published and then persisted. A persistence
// error is returned but the published snapshot stays authoritative.
func (s *Store) Update(ctx context.Context, fn func(e *Editor)) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Another process may have rewritten the shared overlay since this
	// store last saw it; edit on top of the file, not the stale snapshot.
	if s.path != "" {
		if err := s.syncLocked(ctx); err != nil && !errors.Is(err, fs.ErrNotExist) {
			s.l.Warnf(ctx, "taxonomy.Update: %v; editing the in-memory overlay", err)
		}
	}

	cur := s.current.Load()
	e := &Editor{base: cur, overlay: cur.Overlay(), limits: s.limits}
	fn(e)
	if !e.changed {
		return cur, nil
	}

	next, dropped := buildSnapshot(s.defaults, e.overlay, s.limits, cur.version+1)
	s.logDropped(ctx, dropped)
	s.current.Store(next)

	if err := s.persist(next.overlay); err != nil {
		return next, err
	}
	return next, nil
}

// Reload re-reads the overlay file and publishes it when its content
// differs from what this store last loaded or wrote.
func (s *Store) Reload(ctx context.Context) error {
	if s.path == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncLocked(ctx)
}

// syncLocked publishes the overlay file when its digest differs from
// lastDigest. Caller holds mu.
func (s *Store) syncLocked(ctx context.Context) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("taxonomy: read overlay: %w", err)
	}
	digest := sha256.Sum256(data)
	if digest == s.lastDigest {
		return nil
	}

	ov, err := UnmarshalOverlay(data)
	if err != nil {
		return err
	}

	cur := s.current.Load()
	next, dropped := buildSnapshot(s.defaults, ov, s.limits, cur.version+1)
	s.logDropped(ctx, dropped)
	s.lastDigest = digest
	s.current.Store(next)

	s.l.Infof(ctx, "taxonomy: overlay reloaded, version %d, %d learned keywords", next.version, next.overlay.Size())
	return nil
}

// readOverlay loads the overlay file; problems are logged and yield an
// empty overlay.
func (s *Store) readOverlay(ctx context.Context) (Overlay, [sha256.Size]byte) {
	var zero [sha256.Size]byte
	if s.path == "" {
		return make(Overlay), zero
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.l.Warnf(ctx, "taxonomy.readOverlay: %v; using built-in defaults only", err)
		}
		return make(Overlay), zero
	}

	ov, err := UnmarshalOverlay(data)
	if err != nil {
		s.l.Errorf(ctx, "taxonomy.readOverlay: malformed overlay %s: %v; using built-in defaults only", s.path, err)
		return make(Overlay), zero
	}
	return ov, sha256.Sum256(data)
}

// persist writes the overlay with write-temp-then-rename. Caller holds mu.
func (s *Store) persist(ov Overlay) error {
	if s.path == "" {
		return nil
	}

	data, err := MarshalOverlay(ov)
	if err != nil {
		return fmt.Errorf("taxonomy: marshal overlay: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("taxonomy: create overlay dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("taxonomy: create temp overlay: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("taxonomy: write temp overlay: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("taxonomy: sync temp overlay: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("taxonomy: close temp overlay: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("taxonomy: rename overlay: %w", err)
	}

	s.lastDigest = sha256.Sum256(data)
	return nil
}

func (s *Store) logDropped(ctx context.Context, dropped []string) {
	if len(dropped) == 0 {
		return
	}
	s.l.Warnf(ctx, "taxonomy: ignored %d overlay entries: %s", len(dropped), strings.Join(dropped, ", "))
}
