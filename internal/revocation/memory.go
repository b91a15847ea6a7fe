package revocation

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryBus delivers signals to subscribers within the same process.
// It is the test transport and the single-instance deployment default.
type MemoryBus struct {
	mu   sync.RWMutex
	next int
	subs map[uuid.UUID]map[int]Handler
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{subs: map[uuid.UUID]map[int]Handler{}}
}

func (b *MemoryBus) Publish(_ context.Context, sig Signal) error {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs[sig.StudentID]))
	for _, h := range b.subs[sig.StudentID] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(sig)
	}
	return nil
}

func (b *MemoryBus) Subscribe(_ context.Context, studentID uuid.UUID, h Handler) (func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[studentID] == nil {
		b.subs[studentID] = map[int]Handler{}
	}

	id := b.next
	b.next++
	b.subs[studentID][id] = h

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.subs[studentID], id)
		if len(b.subs[studentID]) == 0 {
			delete(b.subs, studentID)
		}
	}, nil
}
