package jobrepo

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job using an optimistic, version-guarded write.
// The row is only written when its stored version still equals the version
// the aggregate was loaded with; the stored version is bumped on success.
// A stale aggregate gets errs.ErrVersionIsInvalid; under concurrent accepts
// this is how every caller but the first fails.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version = loadedVersion + 1

	result := r.db.WithContext(ctx).
		Model(&JobDTO{}).
		Where("id = ? AND version = ?", dto.ID, loadedVersion).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidErrorWithCause("job")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetPendingDueBefore retrieves pending jobs scheduled to start before the
// deadline.
func (r *GormJobRepository) GetPendingDueBefore(ctx context.Context, deadline time.Time) ([]*job.Job, error) {
	var dtos []JobDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND start_at < ?", job.Pending, deadline).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetAcceptedStartingWithin retrieves accepted jobs starting in
// (now, now+window] that have no reminder sent yet.
func (r *GormJobRepository) GetAcceptedStartingWithin(
	ctx context.Context,
	now time.Time,
	window time.Duration,
) ([]*job.Job, error) {
	var dtos []JobDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND reminder_sent = ? AND start_at > ? AND start_at <= ?",
			job.Accepted, false, now, now.Add(window)).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
