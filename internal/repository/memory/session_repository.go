package memory

import (
	"time"

	"notably-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionRepository keeps per-conversation chat state with a sliding TTL.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	// Sessions expire after an hour of inactivity; expired entries are
	// purged every 10 minutes.
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.ChatSession) {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*entity.ChatSession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*entity.ChatSession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}
