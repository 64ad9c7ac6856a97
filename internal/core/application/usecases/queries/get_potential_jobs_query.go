package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetPotentialJobsQueryIsNotConstructed = errors.New(
	"GetPotentialJobsQuery must be created via NewGetPotentialJobsQuery constructor",
)

// GetPotentialJobsQuery lists the pending jobs a translator could claim:
// jobs in a language they speak, excluding their own bookings.
type GetPotentialJobsQuery struct {
	translatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPotentialJobsQuery creates a query for a translator's claimable jobs.
func NewGetPotentialJobsQuery(translatorID kernel.UUID) (GetPotentialJobsQuery, error) {
	if err := translatorID.Validate(); err != nil {
		return GetPotentialJobsQuery{}, err
	}

	return GetPotentialJobsQuery{
		translatorID: translatorID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPotentialJobsQueryIsNotConstructed if validation fails.
func (q GetPotentialJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetPotentialJobsQueryIsNotConstructed)
}

// TranslatorID returns the identifier of the browsing translator.
func (q GetPotentialJobsQuery) TranslatorID() kernel.UUID {
	return q.translatorID
}
