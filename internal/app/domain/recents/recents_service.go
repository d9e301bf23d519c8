package recents

import (
	"sync"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// MaxRecent caps the recent-searches list.
const MaxRecent = 5

// cacheKey is the fixed key the list lives under.
const cacheKey = "recent_searches"

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	Add(prompt string)
	List() []string
	Clear()
}

// ServiceImpl keeps the bounded most-recent-first list of distinct prompts.
// Entries never expire; the bound, not a TTL, evicts.
type ServiceImpl struct {
	mu     sync.Mutex
	store  *cache.Cache
	logger *zap.Logger
}

func NewService(logger *zap.Logger) *ServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceImpl{
		store:  cache.New(cache.NoExpiration, 0),
		logger: logger,
	}
}

// Add moves prompt to the front, deduplicating by exact match and trimming
// to MaxRecent. Empty prompts are ignored.
func (s *ServiceImpl) Add(prompt string) {
	if prompt == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.list()
	next := make([]string, 0, MaxRecent)
	next = append(next, prompt)
	for _, p := range current {
		if p == prompt {
			continue
		}
		next = append(next, p)
		if len(next) == MaxRecent {
			break
		}
	}
	s.store.Set(cacheKey, next, cache.NoExpiration)
	s.logger.Debug("Recent searches updated", zap.Int("count", len(next)))
}

// List returns the prompts most-recent-first.
func (s *ServiceImpl) List() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list()
}

func (s *ServiceImpl) list() []string {
	v, found := s.store.Get(cacheKey)
	if !found {
		return nil
	}
	prompts, ok := v.([]string)
	if !ok {
		return nil
	}
	return prompts
}

// Clear empties the list.
func (s *ServiceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Delete(cacheKey)
}
