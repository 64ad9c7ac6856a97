package queries

import (
	"context"

	"booking/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// GetUsersJobsHistoryQueryHandler lists a user's finished jobs, newest first.
type GetUsersJobsHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetUsersJobsHistoryQueryHandler creates a handler for history listings.
func NewGetUsersJobsHistoryQueryHandler(db *gorm.DB) GetUsersJobsHistoryQueryHandler {
	return GetUsersJobsHistoryQueryHandler{db: db}
}

// Handle executes the history listing. The date range filters on the
// scheduled session start; zero bounds are open ends.
func (h GetUsersJobsHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetUsersJobsHistoryQuery,
) (GetUsersJobsHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUsersJobsHistoryQueryResponse{}, err
	}

	userID := query.UserID().Bytes()

	where := `
		WHERE (customer_id = ? OR translator_id = ?)
		  AND status IN (?, ?, ?)
	`
	args := []any{userID, userID, job.Completed, job.Cancelled, job.NotCalled}

	if !query.From().IsZero() {
		where += " AND start_at >= ?"
		args = append(args, query.From())
	}
	if !query.To().IsZero() {
		where += " AND start_at <= ?"
		args = append(args, query.To())
	}

	resp := GetUsersJobsHistoryQueryResponse{
		Jobs:  make([]JobResponse, 0),
		Page:  query.Page(),
		Limit: query.Limit(),
	}

	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM jobs "+where, args...).
		Scan(&resp.TotalCount).Error; err != nil {
		return GetUsersJobsHistoryQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	args = append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
	`+where+`
		ORDER BY start_at DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return GetUsersJobsHistoryQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		jobResp, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return GetUsersJobsHistoryQueryResponse{}, scanErr
		}
		resp.Jobs = append(resp.Jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return GetUsersJobsHistoryQueryResponse{}, err
	}

	return resp, nil
}
