package ports

import (
	"context"

	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"
)

// DistanceRepository defines the persistence contract for the per-job
// session metadata records.
type DistanceRepository interface {
	// Add persists a new distance record. Created alongside the job, so
	// every job has exactly one record from the start.
	Add(ctx context.Context, aggregate *distance.Distance) error

	// Update persists changes to an existing distance record.
	Update(ctx context.Context, aggregate *distance.Distance) error

	// GetByJobID retrieves the distance record for a job.
	GetByJobID(ctx context.Context, jobID kernel.UUID) (*distance.Distance, error)
}
