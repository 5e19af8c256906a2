package tui

import (
	"sync"

	"github.com/akyairhashvil/meditimer/internal/models"
)

// NoticeQueue collects notices raised by the app until the model drains them.
type NoticeQueue struct {
	mu    sync.Mutex
	items []models.Notice
}

func NewNoticeQueue() *NoticeQueue {
	return &NoticeQueue{}
}

func (q *NoticeQueue) Notify(n models.Notice) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, n)
}

// Drain returns and clears everything queued.
func (q *NoticeQueue) Drain() []models.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}
