package repository

import (
	"context"
	"time"

	"busline/internal/booking"
)

// Draft is a stored wizard session. Drafts are transient by contract:
// they live in memory for the duration of one booking flow and are
// discarded when abandoned.
type Draft struct {
	ID        string
	SessionID string
	Wizard    *booking.Wizard
	CreatedAt time.Time
}

// DraftRepository stores in-progress booking drafts.
type DraftRepository interface {
	Save(ctx context.Context, draft *Draft) error
	GetByID(ctx context.Context, id string) (*Draft, error)
	Delete(ctx context.Context, id string) error
	// DeleteExpired drops drafts created before the cutoff and returns
	// how many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) int
}
