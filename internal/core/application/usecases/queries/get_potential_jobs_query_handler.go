package queries

import (
	"context"

	"booking/internal/core/domain/model/job"

	"gorm.io/gorm"
)

// GetPotentialJobsQueryHandler lists the pending jobs a translator is
// eligible to claim. The language match runs against the translator's skill
// rows; ownership exclusion keeps a translator from claiming their own
// booking.
type GetPotentialJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetPotentialJobsQueryHandler creates a handler for claimable-job
// listings.
func NewGetPotentialJobsQueryHandler(db *gorm.DB) GetPotentialJobsQueryHandler {
	return GetPotentialJobsQueryHandler{db: db}
}

// Handle executes the listing, soonest session first.
func (h GetPotentialJobsQueryHandler) Handle(
	ctx context.Context,
	query GetPotentialJobsQuery,
) ([]JobResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	translatorID := query.TranslatorID().Bytes()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`
		FROM jobs
		WHERE status = ?
		  AND customer_id != ?
		  AND language IN (
			SELECT language FROM user_languages WHERE user_id = ?
		  )
		ORDER BY start_at
	`, job.Pending, translatorID, translatorID).Rows()
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
