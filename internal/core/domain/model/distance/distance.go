package distance

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrDistanceIsNotConstructed is returned when a Distance instance was not
// created through NewDistance or RestoreDistance.
var ErrDistanceIsNotConstructed = errors.New("Distance must be created via NewDistance or RestoreDistance")

// ErrNothingToCorrect is returned by ApplyCorrection when the correction
// carries no usable fields. The record is left untouched.
var ErrNothingToCorrect = errors.New("correction contains no fields to update")

// Distance holds the post-session metadata attached to a job: the measured
// distance and travel time reported by the external feed, plus the admin
// annotations added during manual review. One record per job, created empty
// alongside the job and only ever mutated through ApplyCorrection.
type Distance struct {
	jobID kernel.UUID

	distance string
	time     string

	sessionTime     string
	adminComments   string
	flagged         bool
	manuallyHandled bool
	byAdmin         bool

	guard guard.ConstructorGuard
}

// NewDistance creates the empty metadata record for a freshly created job.
func NewDistance(jobID kernel.UUID) (*Distance, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	return &Distance{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// RestoreDistance reconstructs a Distance record from persistence.
func RestoreDistance(
	jobID kernel.UUID,
	dist string,
	travelTime string,
	sessionTime string,
	adminComments string,
	flagged bool,
	manuallyHandled bool,
	byAdmin bool,
) (*Distance, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	return &Distance{
		jobID:           jobID,
		distance:        dist,
		time:            travelTime,
		sessionTime:     sessionTime,
		adminComments:   adminComments,
		flagged:         flagged,
		manuallyHandled: manuallyHandled,
		byAdmin:         byAdmin,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Distance instance was properly constructed.
func (d *Distance) Validate() error {
	if d == nil {
		return ErrDistanceIsNotConstructed
	}
	return d.guard.Validate(ErrDistanceIsNotConstructed)
}

// JobID returns the identifier of the job this record belongs to.
func (d *Distance) JobID() kernel.UUID {
	return d.jobID
}

// DistanceValue returns the measured distance as reported by the feed.
func (d *Distance) DistanceValue() string {
	return d.distance
}

// Time returns the reported travel time.
func (d *Distance) Time() string {
	return d.time
}

// SessionTime returns the recorded session duration annotation.
func (d *Distance) SessionTime() string {
	return d.sessionTime
}

// AdminComments returns the admin review comment.
func (d *Distance) AdminComments() string {
	return d.adminComments
}

// Flagged reports whether an admin flagged the record for follow-up.
func (d *Distance) Flagged() bool {
	return d.flagged
}

// ManuallyHandled reports whether the record was handled manually.
func (d *Distance) ManuallyHandled() bool {
	return d.manuallyHandled
}

// ByAdmin reports whether the last correction was made by an admin.
func (d *Distance) ByAdmin() bool {
	return d.byAdmin
}

// Correction carries the optional fields of a distance-feed update. The
// fields fall into two groups that are written together:
//
//   - measurement: distance and time
//   - annotation: session time, admin comment, flagged, manually handled,
//     by admin
//
// When any field of a group is present the whole group is written, with the
// absent members reset to their zero values. That matches the external feed,
// which always re-sends a full group. A string field carrying an empty value
// counts as absent, so a feed payload of blanks never wipes stored data.
type Correction struct {
	distance        *string
	time            *string
	sessionTime     *string
	adminComments   *string
	flagged         *bool
	manuallyHandled *bool
	byAdmin         *bool

	guard guard.ConstructorGuard
}

// NewCorrection builds a Correction from the optional feed fields. Nil means
// the field was absent from the request. Flagging a record requires a
// non-empty admin comment.
func NewCorrection(
	dist *string,
	travelTime *string,
	sessionTime *string,
	adminComments *string,
	flagged *bool,
	manuallyHandled *bool,
	byAdmin *bool,
) (Correction, error) {
	if flagged != nil && *flagged {
		if adminComments == nil || *adminComments == "" {
			return Correction{}, errs.NewValueIsRequiredError("adminComments")
		}
	}

	return Correction{
		distance:        dist,
		time:            travelTime,
		sessionTime:     sessionTime,
		adminComments:   adminComments,
		flagged:         flagged,
		manuallyHandled: manuallyHandled,
		byAdmin:         byAdmin,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Correction instance was created through NewCorrection.
func (c Correction) Validate() error {
	return c.guard.Validate(errors.New("Correction must be created via NewCorrection"))
}

// presentString reports whether an optional string field carries a value.
// Empty strings are treated the same as absent fields.
func presentString(s *string) bool {
	return s != nil && *s != ""
}

func (c Correction) hasMeasurement() bool {
	return presentString(c.distance) || presentString(c.time)
}

func (c Correction) hasAnnotation() bool {
	return presentString(c.sessionTime) || presentString(c.adminComments) ||
		c.flagged != nil || c.manuallyHandled != nil || c.byAdmin != nil
}

// IsEmpty reports whether the correction carries no usable fields.
func (c Correction) IsEmpty() bool {
	return !c.hasMeasurement() && !c.hasAnnotation()
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// ApplyCorrection writes the correction into the record, group by group.
// Returns ErrNothingToCorrect when the correction is empty.
func (d *Distance) ApplyCorrection(c Correction) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.IsEmpty() {
		return ErrNothingToCorrect
	}

	if c.hasMeasurement() {
		d.distance = derefString(c.distance)
		d.time = derefString(c.time)
	}

	if c.hasAnnotation() {
		d.sessionTime = derefString(c.sessionTime)
		d.adminComments = derefString(c.adminComments)
		d.flagged = derefBool(c.flagged)
		d.manuallyHandled = derefBool(c.manuallyHandled)
		d.byAdmin = derefBool(c.byAdmin)
	}

	return nil
}
