package queries

import (
	"context"

	"booking/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// GetUsersJobsQueryHandler lists a user's active jobs from the database.
type GetUsersJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersJobsQueryHandler creates a handler for active-job listings.
func NewGetUsersJobsQueryHandler(db *gorm.DB) GetUsersJobsQueryHandler {
	return GetUsersJobsQueryHandler{db: db}
}

// Handle executes the listing. Returns non-terminal jobs where the user is
// the customer or the assigned translator, soonest session first.
func (h GetUsersJobsQueryHandler) Handle(
	ctx context.Context,
	query GetUsersJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	userID := query.UserID().Bytes()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE (customer_id = ? OR translator_id = ?)
		  AND status IN (?, ?, ?)
		ORDER BY start_at
	`, userID, userID, job.Pending, job.Accepted, job.InProgress).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := make([]JobResponse, 0)
	for rows.Next() {
		resp, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
