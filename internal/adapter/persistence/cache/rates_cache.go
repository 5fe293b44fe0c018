// Package cache keeps recently read reference rates in memory in front of a
// city or material repository.
package cache

import (
	"construction_estimator/internal/domain/entities"
	"construction_estimator/internal/usecase/interfaces"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const materialsKey = "all"

// RateCache holds the cached city lookups and the material list. Only hits
// are cached; every write through a wrapped repository purges the affected
// cache. A read that overlapped a purge does not store its result.
type RateCache struct {
	cities    *expirable.LRU[string, entities.CityRate]
	materials *expirable.LRU[string, []entities.MaterialRate]

	cityGen     generation
	materialGen generation
}

// generation counts purges. Fill and purge of the same cache are serialized
// on mu.
type generation struct {
	mu sync.Mutex
	n  uint64
}

func (g *generation) current() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.n
}

// bump runs purge and starts a new generation.
func (g *generation) bump(purge func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	purge()
}

// fill runs add unless a purge happened since seen.
func (g *generation) fill(seen uint64, add func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.n == seen {
		add()
	}
}

func NewRateCache(size int, ttl time.Duration) *RateCache {
	if size <= 0 {
		size = 1
	}
	return &RateCache{
		cities:    expirable.NewLRU[string, entities.CityRate](size, nil, ttl),
		materials: expirable.NewLRU[string, []entities.MaterialRate](1, nil, ttl),
	}
}

// Purge drops every cached entry.
func (c *RateCache) Purge() {
	c.cityGen.bump(c.cities.Purge)
	c.materialGen.bump(c.materials.Purge)
}

func (c *RateCache) Cities(inner interfaces.ICityRepository) *CityRepository {
	return &CityRepository{ICityRepository: inner, cache: c}
}

func (c *RateCache) Materials(inner interfaces.IMaterialRepository) *MaterialRepository {
	return &MaterialRepository{IMaterialRepository: inner, cache: c}
}

// CityRepository caches GetByName. Other reads pass through.
type CityRepository struct {
	interfaces.ICityRepository
	cache *RateCache
}

var _ interfaces.ICityRepository = (*CityRepository)(nil)

func (r *CityRepository) GetByName(ctx context.Context, name string) (entities.CityRate, error) {
	if c, ok := r.cache.cities.Get(name); ok {
		return c, nil
	}
	gen := r.cache.cityGen.current()
	c, err := r.ICityRepository.GetByName(ctx, name)
	if err != nil {
		return entities.CityRate{}, err
	}
	if c.ID != "" {
		r.cache.cityGen.fill(gen, func() { r.cache.cities.Add(name, c) })
	}
	return c, nil
}

func (r *CityRepository) Create(ctx context.Context, c entities.CityRate) (entities.CityRate, error) {
	defer r.purge(ctx)
	return r.ICityRepository.Create(ctx, c)
}

func (r *CityRepository) Update(ctx context.Context, c entities.CityRate) (entities.CityRate, error) {
	defer r.purge(ctx)
	return r.ICityRepository.Update(ctx, c)
}

func (r *CityRepository) Delete(ctx context.Context, id string) (bool, error) {
	defer r.purge(ctx)
	return r.ICityRepository.Delete(ctx, id)
}

func (r *CityRepository) purge(ctx context.Context) {
	r.cache.cityGen.bump(r.cache.cities.Purge)
	slog.DebugContext(ctx, "[cache] city rates purged")
}

// MaterialRepository caches List. Other reads pass through.
type MaterialRepository struct {
	interfaces.IMaterialRepository
	cache *RateCache
}

var _ interfaces.IMaterialRepository = (*MaterialRepository)(nil)

func (r *MaterialRepository) List(ctx context.Context) ([]entities.MaterialRate, error) {
	if list, ok := r.cache.materials.Get(materialsKey); ok {
		return clone(list), nil
	}
	gen := r.cache.materialGen.current()
	list, err := r.IMaterialRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.materialGen.fill(gen, func() { r.cache.materials.Add(materialsKey, clone(list)) })
	return list, nil
}

func (r *MaterialRepository) Create(ctx context.Context, m entities.MaterialRate) (entities.MaterialRate, error) {
	defer r.purge(ctx)
	return r.IMaterialRepository.Create(ctx, m)
}

func (r *MaterialRepository) Update(ctx context.Context, m entities.MaterialRate) (entities.MaterialRate, error) {
	defer r.purge(ctx)
	return r.IMaterialRepository.Update(ctx, m)
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) (bool, error) {
	defer r.purge(ctx)
	return r.IMaterialRepository.Delete(ctx, id)
}

func (r *MaterialRepository) purge(ctx context.Context) {
	r.cache.materialGen.bump(r.cache.materials.Purge)
	slog.DebugContext(ctx, "[cache] material rates purged")
}

func clone(list []entities.MaterialRate) []entities.MaterialRate {
	out := make([]entities.MaterialRate, len(list))
	copy(out, list)
	return out
}
