package distancerepo

import (
	"context"
	"errors"

	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDistanceRepository implements DistanceRepository using GORM.
type GormDistanceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDistanceRepository creates a new GORM distance repository.
func NewGormDistanceRepository(db *gorm.DB, tracker aggregateTracker) *GormDistanceRepository {
	return &GormDistanceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new distance record to the database.
func (r *GormDistanceRepository) Add(ctx context.Context, aggregate *distance.Distance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.JobID(), aggregate)
	return nil
}

// Update saves an existing distance record. The whole row is rewritten so
// annotation fields cleared by a correction actually land as zero values.
func (r *GormDistanceRepository) Update(ctx context.Context, aggregate *distance.Distance) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DistanceDTO{}).
		Where("job_id = ?", dto.JobID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("distance", aggregate.JobID().String())
	}

	r.tracker.TrackAggregate(aggregate.JobID(), aggregate)
	return nil
}

// GetByJobID retrieves the distance record for a job.
func (r *GormDistanceRepository) GetByJobID(ctx context.Context, jobID kernel.UUID) (*distance.Distance, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto DistanceDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("distance", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
