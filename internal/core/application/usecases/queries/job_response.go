// Package queries contains read-only operations that bypass the domain
// aggregates and read projections straight from the database. Implements the
// query side of the CQRS architecture.
package queries

import (
	"database/sql"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobResponse is the flat read model of a job used by the listing queries.
type JobResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	TranslatorID *kernel.UUID
	Language     string
	StartAt      time.Time
	DurationMin  int
	ContactEmail string
	Reference    string
	Status       string
	CreatedAt    time.Time
	AcceptedAt   *time.Time
	EndedAt      *time.Time
}

// jobColumns is the select list every job query shares; scanJobRow matches
// it positionally.
const jobColumns = `
	id,
	customer_id,
	translator_id,
	language,
	start_at,
	duration_min,
	contact_email,
	reference,
	status,
	created_at,
	accepted_at,
	ended_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJobRow(row rowScanner) (JobResponse, error) {
	var resp JobResponse
	var id uuid.UUID
	var customerID uuid.UUID
	var translatorID *uuid.UUID
	var status int
	var contactEmail, reference sql.NullString
	var acceptedAt, endedAt sql.NullTime

	err := row.Scan(
		&id,
		&customerID,
		&translatorID,
		&resp.Language,
		&resp.StartAt,
		&resp.DurationMin,
		&contactEmail,
		&reference,
		&status,
		&resp.CreatedAt,
		&acceptedAt,
		&endedAt,
	)
	if err != nil {
		return JobResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return JobResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return JobResponse{}, err
	}
	if translatorID != nil {
		tID, tErr := kernel.UUIDFromBytes((*translatorID)[:])
		if tErr != nil {
			return JobResponse{}, tErr
		}
		resp.TranslatorID = &tID
	}

	resp.ContactEmail = contactEmail.String
	resp.Reference = reference.String
	resp.Status = job.Status(status).String()
	if acceptedAt.Valid {
		resp.AcceptedAt = &acceptedAt.Time
	}
	if endedAt.Valid {
		resp.EndedAt = &endedAt.Time
	}

	return resp, nil
}
