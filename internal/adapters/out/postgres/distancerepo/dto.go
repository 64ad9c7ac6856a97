// Package distancerepo provides data transfer objects and mapping functions
// for the per-job session metadata records.
package distancerepo

import (
	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DistanceDTO represents the database structure for persisting distance
// records. One row per job, keyed by the job's ID.
type DistanceDTO struct {
	JobID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Distance        string
	Time            string
	SessionTime     string
	AdminComments   string
	Flagged         bool
	ManuallyHandled bool
	ByAdmin         bool
}

// TableName specifies the database table name for distance records.
func (DistanceDTO) TableName() string {
	return "distances"
}

// fromDomain converts a distance domain aggregate to its database representation.
func fromDomain(aggregate *distance.Distance) DistanceDTO {
	return DistanceDTO{
		JobID:           aggregate.JobID().Bytes(),
		Distance:        aggregate.DistanceValue(),
		Time:            aggregate.Time(),
		SessionTime:     aggregate.SessionTime(),
		AdminComments:   aggregate.AdminComments(),
		Flagged:         aggregate.Flagged(),
		ManuallyHandled: aggregate.ManuallyHandled(),
		ByAdmin:         aggregate.ByAdmin(),
	}
}

// toDomain converts a database DTO to a distance domain aggregate.
func toDomain(dto DistanceDTO) (*distance.Distance, error) {
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}

	return distance.RestoreDistance(
		jobID,
		dto.Distance,
		dto.Time,
		dto.SessionTime,
		dto.AdminComments,
		dto.Flagged,
		dto.ManuallyHandled,
		dto.ByAdmin,
	)
}
