package queries

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrGetAllJobsQueryIsNotConstructed = errors.New(
	"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
)

// GetAllJobsFilter carries the optional admin listing filters. Zero values
// mean "no filter".
type GetAllJobsFilter struct {
	Status     job.Status
	Language   string
	CustomerID *kernel.UUID
	From       time.Time
	To         time.Time
}

// GetAllJobsQuery is the admin console listing: every job, optionally
// narrowed by status, language, customer, and scheduled-start range.
type GetAllJobsQuery struct {
	filter GetAllJobsFilter
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewGetAllJobsQuery creates an admin listing query.
func NewGetAllJobsQuery(filter GetAllJobsFilter, page, limit int) (GetAllJobsQuery, error) {
	if filter.Status != job.Unknown {
		if err := filter.Status.Validate(); err != nil {
			return GetAllJobsQuery{}, err
		}
	}
	if filter.CustomerID != nil {
		if err := filter.CustomerID.Validate(); err != nil {
			return GetAllJobsQuery{}, err
		}
	}
	if !filter.From.IsZero() && !filter.To.IsZero() && filter.To.Before(filter.From) {
		return GetAllJobsQuery{}, errs.NewValueIsInvalidError("dateRange")
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

	return GetAllJobsQuery{
		filter: filter,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllJobsQueryIsNotConstructed if validation fails.
func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}

// Filter returns the listing filters.
func (q GetAllJobsQuery) Filter() GetAllJobsFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q GetAllJobsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetAllJobsQuery) Limit() int {
	return q.limit
}

// GetAllJobsQueryResponse is one page of the admin listing.
type GetAllJobsQueryResponse struct {
	Jobs       []JobResponse
	Page       int
	Limit      int
	TotalCount int
}
