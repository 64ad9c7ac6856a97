package queries

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrGetUsersJobsQueryIsNotConstructed = errors.New(
	"GetUsersJobsQuery must be created via NewGetUsersJobsQuery constructor",
)

// GetUsersJobsQuery retrieves the active (non-terminal) jobs a user is
// involved in, either as the booking customer or as the assigned translator.
type GetUsersJobsQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUsersJobsQuery creates a query for a user's active jobs.
func NewGetUsersJobsQuery(userID kernel.UUID) (GetUsersJobsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUsersJobsQuery{}, err
	}

	return GetUsersJobsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUsersJobsQueryIsNotConstructed if validation fails.
func (q GetUsersJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersJobsQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose jobs are listed.
func (q GetUsersJobsQuery) UserID() kernel.UUID {
	return q.userID
}
