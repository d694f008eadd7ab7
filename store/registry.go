package store

import (
	"context"
	"sync"
	"time"

	"github.com/Lzww0608/guid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Registry issues Guids and records them in a Repository. Seed-derived
// Guids are remembered once stored, so each seed hits the repository once
// per process. It is safe for concurrent use.
type Registry struct {
	repo Repository
	gen  *guid.Generator
	now  func() time.Time

	stored map[guid.Guid]struct{} // seed-derived Guids already saved
	mu     sync.RWMutex
	flight singleflight.Group // one Save per Guid in flight
}

// NewRegistry creates a Registry backed by repo using the default generator.
func NewRegistry(repo Repository) *Registry {
	return NewRegistryWithGenerator(repo, guid.NewGenerator())
}

// NewRegistryWithGenerator creates a Registry with a custom generator.
func NewRegistryWithGenerator(repo Repository, gen *guid.Generator) *Registry {
	return &Registry{
		repo:   repo,
		gen:    gen,
		now:    time.Now,
		stored: make(map[guid.Guid]struct{}),
	}
}

func (r *Registry) isStored(id guid.Guid) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.stored[id]
	return ok
}

// Resolve returns the Guid derived from seed, storing it on first use.
// Concurrent calls for the same seed share a single Save; calls for
// different seeds proceed in parallel.
func (r *Registry) Resolve(ctx context.Context, seed string) (guid.Guid, error) {
	id, err := guid.FromFixedString(seed)
	if err != nil {
		return guid.Null, err
	}
	if r.isStored(id) {
		return id, nil
	}

	_, err, _ = r.flight.Do(id.String(), func() (interface{}, error) {
		// An earlier flight may have finished between the check and Do.
		if r.isStored(id) {
			return nil, nil
		}

		start := time.Now()
		if err := r.repo.Save(ctx, Record{ID: id, Seed: seed, CreatedAt: r.now()}); err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.stored[id] = struct{}{}
		r.mu.Unlock()

		log.Debug().
			Str("seed", seed).
			Str("id", id.String()).
			Dur("dur", time.Since(start)).
			Msg("seed resolved")
		return nil, nil
	})
	if err != nil {
		return guid.Null, err
	}
	return id, nil
}

// Generate issues and stores a new random Guid.
func (r *Registry) Generate(ctx context.Context) (guid.Guid, error) {
	id, err := r.gen.New()
	if err != nil {
		return guid.Null, err
	}
	if err := r.repo.Save(ctx, Record{ID: id, CreatedAt: r.now()}); err != nil {
		return guid.Null, err
	}
	return id, nil
}

// Lookup returns the record stored for id.
func (r *Registry) Lookup(ctx context.Context, id guid.Guid) (Record, error) {
	if err := id.Validate(); err != nil {
		return Record{}, err
	}
	return r.repo.Find(ctx, id)
}

// Forget deletes id from the repository and from the set of stored seeds.
func (r *Registry) Forget(ctx context.Context, id guid.Guid) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := r.repo.Delete(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	delete(r.stored, id)
	r.mu.Unlock()
	return nil
}

// Cached reports how many seed-derived Guids are held in memory.
func (r *Registry) Cached() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stored)
}
