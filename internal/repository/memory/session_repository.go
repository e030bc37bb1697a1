package memory

import (
	"sync"
	"time"

	"dbt-dost-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds per-user conversation sessions in an expiring
// in-memory cache. Update serializes concurrent events for the same user id
// behind a per-user mutex, so a read-modify-write transition is atomic.
type SessionRepository struct {
	cache *cache.Cache

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	r := &SessionRepository{
		cache: cache.New(ttl, cleanupInterval),
		locks: make(map[string]*sync.Mutex),
	}
	// Reclaim the per-user lock when the session leaves the cache (TTL expiry
	// or explicit delete), so the lock map stays bounded by live sessions.
	r.cache.OnEvicted(func(userID string, _ interface{}) {
		r.mu.Lock()
		delete(r.locks, userID)
		r.mu.Unlock()
	})
	return r
}

// Update runs fn against the user's session under that user's lock, creating
// the session on first contact, and saves the (possibly mutated) session
// afterwards. Saving refreshes the expiry, so active conversations stay alive.
func (r *SessionRepository) Update(userID string, fn func(session *store.Session)) {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, found := r.get(userID)
	if !found {
		session = &store.Session{
			UserID: userID,
			State:  store.StateAwaitingLanguage,
		}
	}
	fn(session)
	r.cache.Set(userID, session, cache.DefaultExpiration)
}

// Get returns a snapshot copy of the user's session, if one exists
func (r *SessionRepository) Get(userID string) (store.Session, bool) {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	session, found := r.get(userID)
	if !found {
		return store.Session{}, false
	}
	return *session, true
}

func (r *SessionRepository) Delete(userID string) {
	lock := r.userLock(userID)
	lock.Lock()
	defer lock.Unlock()
	r.cache.Delete(userID)

	// Eviction only fires for keys that existed; drop the lock entry either way
	r.mu.Lock()
	delete(r.locks, userID)
	r.mu.Unlock()
}

func (r *SessionRepository) get(userID string) (*store.Session, bool) {
	if x, found := r.cache.Get(userID); found {
		return x.(*store.Session), true
	}
	return nil, false
}

func (r *SessionRepository) userLock(userID string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[userID] = lock
	}
	return lock
}
