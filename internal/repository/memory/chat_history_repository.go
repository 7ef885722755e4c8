package memory

import (
	"sync"

	"notably-be/internal/entity"
)

// ChatHistoryRepository holds the recent conversation history, oldest first.
// When the cap is reached the oldest exchange is evicted.
type ChatHistoryRepository struct {
	mu      sync.RWMutex
	limit   int
	entries []*entity.ChatExchange
}

func NewChatHistoryRepository(limit int) *ChatHistoryRepository {
	if limit <= 0 {
		limit = 50
	}
	return &ChatHistoryRepository{
		limit:   limit,
		entries: make([]*entity.ChatExchange, 0, limit),
	}
}

func (r *ChatHistoryRepository) Append(exchange *entity.ChatExchange) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, exchange)
	if len(r.entries) > r.limit {
		r.entries = r.entries[1:]
	}
}

// All returns a snapshot, oldest exchange first.
func (r *ChatHistoryRepository) All() []*entity.ChatExchange {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snapshot := make([]*entity.ChatExchange, len(r.entries))
	copy(snapshot, r.entries)
	return snapshot
}

func (r *ChatHistoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
