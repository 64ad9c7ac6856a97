package queries

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrGetUsersJobsHistoryQueryIsNotConstructed = errors.New(
	"GetUsersJobsHistoryQuery must be created via NewGetUsersJobsHistoryQuery constructor",
)

// History pagination bounds.
const (
	defaultHistoryLimit = 15
	maxHistoryLimit     = 100
)

// GetUsersJobsHistoryQuery retrieves a user's finished jobs (completed,
// cancelled, or not_called) within a date range, paginated.
type GetUsersJobsHistoryQuery struct {
	userID kernel.UUID
	from   time.Time
	to     time.Time
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetUsersJobsHistoryQuery creates a history query. Page numbers start at
// 1; a non-positive page or limit falls back to the defaults.
func NewGetUsersJobsHistoryQuery(
	userID kernel.UUID,
	from time.Time,
	to time.Time,
	page int,
	limit int,
) (GetUsersJobsHistoryQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUsersJobsHistoryQuery{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return GetUsersJobsHistoryQuery{}, errs.NewValueIsInvalidError("dateRange")
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	return GetUsersJobsHistoryQuery{
		userID: userID,
		from:   from,
		to:     to,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUsersJobsHistoryQueryIsNotConstructed if validation fails.
func (q GetUsersJobsHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersJobsHistoryQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose history is listed.
func (q GetUsersJobsHistoryQuery) UserID() kernel.UUID {
	return q.userID
}

// From returns the lower bound of the range, or the zero time for no bound.
func (q GetUsersJobsHistoryQuery) From() time.Time {
	return q.from
}

// To returns the upper bound of the range, or the zero time for no bound.
func (q GetUsersJobsHistoryQuery) To() time.Time {
	return q.to
}

// Page returns the 1-based page number.
func (q GetUsersJobsHistoryQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetUsersJobsHistoryQuery) Limit() int {
	return q.limit
}

// GetUsersJobsHistoryQueryResponse is one page of finished jobs plus the
// paging metadata the client needs to fetch the rest.
type GetUsersJobsHistoryQueryResponse struct {
	Jobs       []JobResponse
	Page       int
	Limit      int
	TotalCount int
}
