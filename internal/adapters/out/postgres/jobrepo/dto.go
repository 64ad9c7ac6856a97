// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. It implements the repository pattern for the job domain
// aggregate, handling the conversion between domain entities and database
// representations.
package jobrepo

import (
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO represents the database structure for persisting job aggregates.
// The version column carries the optimistic lock counter the Update method
// checks against.
type JobDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID  `gorm:"type:uuid;index"`
	TranslatorID *uuid.UUID `gorm:"type:uuid;index"`
	Language     string     `gorm:"type:varchar(8);index"`
	StartAt      time.Time  `gorm:"index"`
	DurationMin  int
	ContactEmail string
	Reference    string
	Status       int `gorm:"index"`
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	StartedAt    *time.Time
	EndedAt      *time.Time
	ReminderSent bool
	Version      int
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var translatorID *uuid.UUID
	if id := aggregate.Translator(); id != nil {
		raw := id.Bytes()
		translatorID = &raw
	}

	return JobDTO{
		ID:           aggregate.ID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		TranslatorID: translatorID,
		Language:     aggregate.Language().Code(),
		StartAt:      aggregate.StartAt(),
		DurationMin:  aggregate.DurationMin(),
		ContactEmail: aggregate.ContactEmail(),
		Reference:    aggregate.Reference(),
		Status:       int(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		AcceptedAt:   aggregate.AcceptedAt(),
		StartedAt:    aggregate.StartedAt(),
		EndedAt:      aggregate.EndedAt(),
		ReminderSent: aggregate.ReminderSent(),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to a job domain aggregate using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var translatorID *kernel.UUID
	if dto.TranslatorID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.TranslatorID)[:])
		if tErr != nil {
			return nil, tErr
		}
		translatorID = &tID
	}

	language, err := kernel.NewLanguage(dto.Language)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(
		id,
		customerID,
		translatorID,
		language,
		dto.StartAt,
		dto.DurationMin,
		dto.ContactEmail,
		dto.Reference,
		job.Status(dto.Status),
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.StartedAt,
		dto.EndedAt,
		dto.ReminderSent,
		dto.Version,
	)
}
