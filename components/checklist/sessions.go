package checklist

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	// DefaultSessionTTL is how long an idle session survives.
	DefaultSessionTTL = time.Hour
	// DefaultSessionCleanup is how often expired sessions are purged.
	DefaultSessionCleanup = 10 * time.Minute
)

// CacheSessionStore keeps sessions in an expiring in-memory cache. An idle
// session is dropped after the TTL, which ends its form state.
type CacheSessionStore struct {
	cache *cache.Cache
	now   func() time.Time
}

// NewCacheSessionStore creates a store. Non-positive durations fall back to the defaults.
func NewCacheSessionStore(ttl, cleanup time.Duration) *CacheSessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	if cleanup <= 0 {
		cleanup = DefaultSessionCleanup
	}
	return &CacheSessionStore{
		cache: cache.New(ttl, cleanup),
		now:   time.Now,
	}
}

// Get returns the live session for id and extends its lifetime.
func (s *CacheSessionStore) Get(_ context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: empty id", ErrSessionNotFound)
	}
	x, found := s.cache.Get(id)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	session := x.(*Session)
	session.TouchedAt = s.now()
	s.cache.Set(id, session, cache.DefaultExpiration)
	return session, nil
}

// Create starts a new empty session.
func (s *CacheSessionStore) Create(_ context.Context) (*Session, error) {
	session := newSession(uuid.NewString(), s.now())
	s.cache.Set(session.ID, session, cache.DefaultExpiration)
	return session, nil
}

// Save stores the session and resets its expiry.
func (s *CacheSessionStore) Save(_ context.Context, session *Session) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("checklist: session id is required")
	}
	if session.State == nil {
		session.State = NewFormState()
	}
	session.TouchedAt = s.now()
	s.cache.Set(session.ID, session, cache.DefaultExpiration)
	return nil
}

// Delete ends the session.
func (s *CacheSessionStore) Delete(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

// Count returns the number of sessions currently held, expired ones included
// until the next cleanup.
func (s *CacheSessionStore) Count() int {
	return s.cache.ItemCount()
}
