// Package ports defines repository and outbound-gateway interfaces for the
// booking domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	// The job must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate using optimistic
	// locking: the write only succeeds if the stored version still matches
	// the version the aggregate was loaded with. On a version mismatch the
	// repository returns an error wrapping errs.ErrVersionIsInvalid, which
	// is how a losing concurrent accept surfaces.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetPendingDueBefore retrieves pending jobs whose scheduled start is
	// earlier than the deadline. Used by the expiry sweep to cancel jobs
	// nobody accepted in time.
	GetPendingDueBefore(ctx context.Context, deadline time.Time) ([]*job.Job, error)

	// GetAcceptedStartingWithin retrieves accepted jobs starting in the
	// window (now, now+window] that have not had a reminder sent yet.
	// Used by the session reminder sweep.
	GetAcceptedStartingWithin(ctx context.Context, now time.Time, window time.Duration) ([]*job.Job, error)
}
