package queries

import (
	"context"

	"booking/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// GetAllJobsQueryHandler serves the admin console listing.
type GetAllJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllJobsQueryHandler creates a handler for admin listings.
func NewGetAllJobsQueryHandler(db *gorm.DB) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{db: db}
}

// Handle executes the admin listing with the requested filters, newest
// bookings first.
func (h GetAllJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAllJobsQuery,
) (GetAllJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllJobsQueryResponse{}, err
	}

	filter := query.Filter()

	where := " WHERE 1=1"
	args := []any{}

	if filter.Status != job.Unknown {
		where += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Language != "" {
		where += " AND language = ?"
		args = append(args, filter.Language)
	}
	if filter.CustomerID != nil {
		where += " AND customer_id = ?"
		args = append(args, filter.CustomerID.Bytes())
	}
	if !filter.From.IsZero() {
		where += " AND start_at >= ?"
		args = append(args, filter.From)
	}
	if !filter.To.IsZero() {
		where += " AND start_at <= ?"
		args = append(args, filter.To)
	}

	resp := GetAllJobsQueryResponse{
		Jobs:  make([]JobResponse, 0),
		Page:  query.Page(),
		Limit: query.Limit(),
	}

	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM jobs"+where, args...).
		Scan(&resp.TotalCount).Error; err != nil {
		return GetAllJobsQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.Limit()
	args = append(args, query.Limit(), offset)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
	`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, args...).Rows()
	if err != nil {
		return GetAllJobsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		jobResp, scanErr := scanJobRow(rows)
		if scanErr != nil {
			return GetAllJobsQueryResponse{}, scanErr
		}
		resp.Jobs = append(resp.Jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return GetAllJobsQueryResponse{}, err
	}

	return resp, nil
}
