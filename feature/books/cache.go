package books

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// CachedStore wraps a Store with a TTL cache over category and ledger
// account lookups. Item lookups always pass through: the engine's
// name-collision guard depends on fresh item reads.
//
// Account and category records are stable within a sync pass, so caching
// them avoids re-querying the same three ledger accounts for every created
// product. Creates prime the cache so a find-or-create sequence never
// re-fetches what it just made.
type CachedStore struct {
	inner Store
	ttl   time.Duration

	mu         sync.RWMutex
	accounts   map[string]*accountEntry
	categories map[string]*categoryEntry
	sf         singleflight.Group
}

type accountEntry struct {
	account *Account // nil is cached too: a missing ledger account stays missing
	built   time.Time
}

type categoryEntry struct {
	category *Category
	built    time.Time
}

// NewCachedStore wraps the store. A zero or negative TTL disables caching
// and returns the inner store unchanged.
func NewCachedStore(inner Store, ttl time.Duration) Store {
	if ttl <= 0 {
		return inner
	}
	return &CachedStore{
		inner:      inner,
		ttl:        ttl,
		accounts:   make(map[string]*accountEntry),
		categories: make(map[string]*categoryEntry),
	}
}

func (s *CachedStore) expired(built time.Time) bool {
	return time.Since(built) > s.ttl
}

// FindAccountByName returns the cached account, building the entry through
// singleflight on a miss so concurrent callers share one lookup.
func (s *CachedStore) FindAccountByName(ctx context.Context, name string) (*Account, error) {
	s.mu.RLock()
	entry, ok := s.accounts[name]
	s.mu.RUnlock()

	if ok && !s.expired(entry.built) {
		return entry.account, nil
	}

	result, err, _ := s.sf.Do("account|"+name, func() (interface{}, error) {
		// Double-check after acquiring the singleflight slot
		s.mu.RLock()
		entry, ok := s.accounts[name]
		s.mu.RUnlock()
		if ok && !s.expired(entry.built) {
			return entry.account, nil
		}

		account, err := s.inner.FindAccountByName(ctx, name)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.accounts[name] = &accountEntry{account: account, built: time.Now()}
		s.mu.Unlock()

		return account, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.(*Account), nil
}

// FindCategoryByName returns the cached category, falling back to the store.
func (s *CachedStore) FindCategoryByName(ctx context.Context, name string) (*Category, error) {
	s.mu.RLock()
	entry, ok := s.categories[name]
	s.mu.RUnlock()

	if ok && !s.expired(entry.built) {
		return entry.category, nil
	}

	result, err, _ := s.sf.Do("category|"+name, func() (interface{}, error) {
		s.mu.RLock()
		entry, ok := s.categories[name]
		s.mu.RUnlock()
		if ok && !s.expired(entry.built) {
			return entry.category, nil
		}

		category, err := s.inner.FindCategoryByName(ctx, name)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.categories[name] = &categoryEntry{category: category, built: time.Now()}
		s.mu.Unlock()

		return category, nil
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	return result.(*Category), nil
}

// CreateCategory creates through the inner store and primes the cache, so a
// negative entry from the preceding find does not shadow the new category.
func (s *CachedStore) CreateCategory(ctx context.Context, name string) (*Category, error) {
	category, err := s.inner.CreateCategory(ctx, name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.categories[name] = &categoryEntry{category: category, built: time.Now()}
	s.mu.Unlock()

	return category, nil
}

func (s *CachedStore) FindItemByName(ctx context.Context, name string) (*Item, error) {
	return s.inner.FindItemByName(ctx, name)
}

func (s *CachedStore) FindItemBySku(ctx context.Context, sku string) (*Item, error) {
	return s.inner.FindItemBySku(ctx, sku)
}

func (s *CachedStore) CreateItem(ctx context.Context, item *Item) (*Item, error) {
	return s.inner.CreateItem(ctx, item)
}

func (s *CachedStore) UpdateItem(ctx context.Context, item *Item) (*Item, error) {
	return s.inner.UpdateItem(ctx, item)
}

// Invalidate drops all cached entries. Useful for tests and forced rebuilds.
func (s *CachedStore) Invalidate() {
	s.mu.Lock()
	s.accounts = make(map[string]*accountEntry)
	s.categories = make(map[string]*categoryEntry)
	s.mu.Unlock()
}
