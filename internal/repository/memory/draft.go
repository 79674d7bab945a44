// Package memory holds the in-memory repository implementations. The
// booking client keeps no database; drafts die with the process.
package memory

import (
	"context"
	"sync"
	"time"

	"busline/internal/repository"
)

// DraftRepository is an in-memory, mutex-guarded draft store.
type DraftRepository struct {
	mu     sync.RWMutex
	drafts map[string]*repository.Draft
}

var _ repository.DraftRepository = (*DraftRepository)(nil)

// NewDraftRepository creates an empty store.
func NewDraftRepository() *DraftRepository {
	return &DraftRepository{drafts: make(map[string]*repository.Draft)}
}

// Save inserts or replaces a draft.
func (r *DraftRepository) Save(_ context.Context, draft *repository.Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drafts[draft.ID] = draft
	return nil
}

// GetByID returns a draft or repository.ErrNotFound.
func (r *DraftRepository) GetByID(_ context.Context, id string) (*repository.Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	draft, ok := r.drafts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return draft, nil
}

// Delete removes a draft. Deleting a missing draft is not an error.
func (r *DraftRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.drafts, id)
	return nil
}

// DeleteExpired drops drafts created before the cutoff.
func (r *DraftRepository) DeleteExpired(_ context.Context, cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, draft := range r.drafts {
		if draft.CreatedAt.Before(cutoff) {
			delete(r.drafts, id)
			n++
		}
	}
	return n
}
