package queries

import (
	"context"
	"database/sql"

	"booking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetJobQueryHandler reads the job detail view from the database.
type GetJobQueryHandler struct {
	db *gorm.DB
}

// NewGetJobQueryHandler creates a handler for single-job lookups.
func NewGetJobQueryHandler(db *gorm.DB) GetJobQueryHandler {
	return GetJobQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no job
// with the requested ID exists.
func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (GetJobQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetJobQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+jobColumns+`,
			u.name,
			u.phone
		FROM jobs
		LEFT JOIN users u ON u.id = jobs.translator_id
		WHERE jobs.id = ?
	`, query.JobID().Bytes()).Rows()
	if err != nil {
		return GetJobQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetJobQueryResponse{}, err
		}
		return GetJobQueryResponse{}, errs.NewObjectNotFoundError("job", query.JobID().String())
	}

	var resp GetJobQueryResponse
	resp.Job, err = scanJobRowWithTranslator(rows, &resp.TranslatorName, &resp.TranslatorPhone)
	if err != nil {
		return GetJobQueryResponse{}, err
	}

	return resp, rows.Err()
}

// scanJobRowWithTranslator scans the shared job columns plus the joined
// translator name and phone, which are NULL for unassigned jobs.
func scanJobRowWithTranslator(rows *sql.Rows, name, phone *string) (JobResponse, error) {
	var resp JobResponse
	var nullName, nullPhone sql.NullString

	resp, err := scanJobRowTail(rows, &nullName, &nullPhone)
	if err != nil {
		return JobResponse{}, err
	}

	*name = nullName.String
	*phone = nullPhone.String
	return resp, nil
}

func scanJobRowTail(rows *sql.Rows, extra ...any) (JobResponse, error) {
	return scanJobRow(appendScanner{rows: rows, extra: extra})
}

// appendScanner widens a row scan with trailing destinations so the shared
// jobColumns scanner can be reused by queries that join extra columns.
type appendScanner struct {
	rows  *sql.Rows
	extra []any
}

func (s appendScanner) Scan(dest ...any) error {
	return s.rows.Scan(append(dest, s.extra...)...)
}
