package memory

import (
	"sync"
	"testing"
	"time"

	"dbt-dost-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCreatesSessionOnFirstContact(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	repo.Update("user-1", func(session *store.Session) {
		assert.Equal(t, "user-1", session.UserID)
		assert.Equal(t, store.StateAwaitingLanguage, session.State)
		assert.False(t, session.HasLanguage())
		session.Language = store.LanguageEnglish
		session.State = store.StateMainMenu
	})

	session, found := repo.Get("user-1")
	assert.True(t, found)
	assert.Equal(t, store.LanguageEnglish, session.Language)
	assert.Equal(t, store.StateMainMenu, session.State)
}

func TestUpdatePersistsAcrossCalls(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	repo.Update("user-1", func(session *store.Session) {
		session.Language = store.LanguageHindi
	})
	repo.Update("user-1", func(session *store.Session) {
		assert.Equal(t, store.LanguageHindi, session.Language)
		session.State = store.StateAwaitingAIQuery
	})

	session, _ := repo.Get("user-1")
	assert.Equal(t, store.LanguageHindi, session.Language)
	assert.Equal(t, store.StateAwaitingAIQuery, session.State)
}

func TestGetMissingUser(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	_, found := repo.Get("nobody")
	assert.False(t, found)
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	repo.Update("user-1", func(session *store.Session) {})
	repo.Delete("user-1")

	_, found := repo.Get("user-1")
	assert.False(t, found)
}

func TestSessionExpiry(t *testing.T) {
	repo := NewSessionRepository(20*time.Millisecond, 5*time.Millisecond)

	repo.Update("user-1", func(session *store.Session) {})
	time.Sleep(60 * time.Millisecond)

	_, found := repo.Get("user-1")
	assert.False(t, found, "session should expire after its TTL")
}

func TestUpdateSerializesConcurrentTransitions(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			repo.Update("user-1", func(session *store.Session) {
				// read-modify-write on a field shared by all workers
				if session.CurrentCategory == "" {
					session.CurrentCategory = "0"
				}
				n := int(session.CurrentCategory[0]-'0') + 1
				session.CurrentCategory = string(rune('0' + n%10))
			})
		}()
	}
	wg.Wait()

	session, found := repo.Get("user-1")
	assert.True(t, found)
	// 50 serialized increments mod 10 land back on zero
	assert.Equal(t, "0", session.CurrentCategory)
}

func TestLockReclaimedOnDelete(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	repo.Update("user-1", func(session *store.Session) {})
	assert.True(t, hasLock(repo, "user-1"))

	repo.Delete("user-1")
	assert.False(t, hasLock(repo, "user-1"), "lock entry should go away with the session")
}

func TestLockReclaimedOnExpiry(t *testing.T) {
	repo := NewSessionRepository(20*time.Millisecond, 5*time.Millisecond)

	repo.Update("user-1", func(session *store.Session) {})
	assert.True(t, hasLock(repo, "user-1"))

	time.Sleep(60 * time.Millisecond)
	assert.False(t, hasLock(repo, "user-1"), "janitor eviction should reclaim the lock entry")
}

func hasLock(repo *SessionRepository, userID string) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	_, ok := repo.locks[userID]
	return ok
}

func TestGetReturnsSnapshot(t *testing.T) {
	repo := NewSessionRepository(time.Minute, time.Minute)

	repo.Update("user-1", func(session *store.Session) {
		session.Language = store.LanguageEnglish
	})

	snapshot, _ := repo.Get("user-1")
	snapshot.Language = store.LanguageHindi

	current, _ := repo.Get("user-1")
	assert.Equal(t, store.LanguageEnglish, current.Language, "mutating a snapshot must not touch the stored session")
}
