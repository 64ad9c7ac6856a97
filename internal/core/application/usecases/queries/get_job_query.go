package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetJobQueryIsNotConstructed = errors.New(
	"GetJobQuery must be created via NewGetJobQuery constructor",
)

// GetJobQuery retrieves one job together with its assigned translator's
// contact summary.
type GetJobQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetJobQuery creates a query for a single job.
func NewGetJobQuery(jobID kernel.UUID) (GetJobQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobQuery{}, err
	}

	return GetJobQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetJobQueryIsNotConstructed if validation fails.
func (q GetJobQuery) Validate() error {
	return q.guard.Validate(ErrGetJobQueryIsNotConstructed)
}

// JobID returns the identifier of the requested job.
func (q GetJobQuery) JobID() kernel.UUID {
	return q.jobID
}

// GetJobQueryResponse is the detail view of a job: the flat job read model
// plus the assigned translator's name and phone, when a translator is set.
type GetJobQueryResponse struct {
	Job             JobResponse
	TranslatorName  string
	TranslatorPhone string
}
