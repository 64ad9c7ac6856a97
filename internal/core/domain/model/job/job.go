package job

import (
	"errors"
	"strings"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through NewJob or RestoreJob. This ensures all jobs are properly validated.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob")

// Session duration bounds in minutes.
const (
	minDurationMin = 5
	maxDurationMin = 480
)

// Job is the aggregate root for a bookable translation session. It owns the
// lifecycle status and the translator assignment, and enforces every
// transition rule through its methods.
//
// Invariants:
//   - exactly one current status at all times
//   - a translator is assigned iff the status requires one
//     (see Status.ValidateCanHaveTranslator)
//   - the version field changes only through the repository's optimistic
//     update, never through the aggregate itself
//   - can only be created through NewJob or RestoreJob
type Job struct {
	id           kernel.UUID
	customerID   kernel.UUID
	translatorID *kernel.UUID
	language     kernel.Language

	startAt     time.Time
	durationMin int

	// contactEmail and reference are optional admin-facing details,
	// updatable while the job is non-terminal.
	contactEmail string
	reference    string

	status       Status
	createdAt    time.Time
	acceptedAt   *time.Time
	startedAt    *time.Time
	endedAt      *time.Time
	reminderSent bool

	// version is the persistence-level optimistic lock counter, loaded from
	// and written back by the repository.
	version int

	guard guard.ConstructorGuard
}

// NewJob creates a pending Job with validation. The job starts unassigned in
// Pending status with version 1.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customerID: the requesting customer (must be a valid UUID)
//   - language: language needed for the session
//   - startAt: scheduled session start (must be set)
//   - durationMin: session length in minutes (5 to 480)
//   - createdAt: creation timestamp supplied by the caller
func NewJob(
	id kernel.UUID,
	customerID kernel.UUID,
	language kernel.Language,
	startAt time.Time,
	durationMin int,
	createdAt time.Time,
) (*Job, error) {
	j := &Job{
		status:    Pending,
		createdAt: createdAt,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setLanguage(language),
		j.setStartAt(startAt),
		j.setDurationMin(durationMin),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// RestoreJob reconstructs a Job from persistence without applying the NewJob
// creation defaults. It validates identifier, language, status, and the
// status/translator consistency rule before returning the aggregate.
func RestoreJob(
	id kernel.UUID,
	customerID kernel.UUID,
	translatorID *kernel.UUID,
	language kernel.Language,
	startAt time.Time,
	durationMin int,
	contactEmail string,
	reference string,
	status Status,
	createdAt time.Time,
	acceptedAt *time.Time,
	startedAt *time.Time,
	endedAt *time.Time,
	reminderSent bool,
	version int,
) (*Job, error) {
	j := &Job{
		contactEmail: contactEmail,
		reference:    reference,
		createdAt:    createdAt,
		acceptedAt:   acceptedAt,
		startedAt:    startedAt,
		endedAt:      endedAt,
		reminderSent: reminderSent,
		version:      version,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setLanguage(language),
		j.setStartAt(startAt),
		j.setDurationMin(durationMin),
	); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := status.ValidateCanHaveTranslator(translatorID != nil); err != nil {
		return nil, err
	}
	if translatorID != nil {
		if err := translatorID.Validate(); err != nil {
			return nil, err
		}
	}

	j.status = status
	j.translatorID = translatorID
	return j, nil
}

// Validate ensures the Job instance was properly constructed.
func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// CustomerID returns the requesting customer's identifier.
func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// Translator returns the assigned translator's ID, or nil if unassigned.
func (j *Job) Translator() *kernel.UUID {
	return j.translatorID
}

// Language returns the language required for the session.
func (j *Job) Language() kernel.Language {
	return j.language
}

// StartAt returns the scheduled session start time.
func (j *Job) StartAt() time.Time {
	return j.startAt
}

// DurationMin returns the session length in minutes.
func (j *Job) DurationMin() int {
	return j.durationMin
}

// ContactEmail returns the optional contact email for the session.
func (j *Job) ContactEmail() string {
	return j.contactEmail
}

// Reference returns the optional customer booking reference.
func (j *Job) Reference() string {
	return j.reference
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// CreatedAt returns the creation timestamp.
func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// AcceptedAt returns when the job was accepted, or nil.
func (j *Job) AcceptedAt() *time.Time {
	return j.acceptedAt
}

// StartedAt returns when the session started, or nil.
func (j *Job) StartedAt() *time.Time {
	return j.startedAt
}

// EndedAt returns when the session ended, or nil.
func (j *Job) EndedAt() *time.Time {
	return j.endedAt
}

// ReminderSent reports whether a session reminder has been pushed for this job.
func (j *Job) ReminderSent() bool {
	return j.reminderSent
}

// Version returns the optimistic lock counter loaded from persistence.
func (j *Job) Version() int {
	return j.version
}

// Accept assigns the job to a translator and moves it to Accepted.
// Eligibility (role, language, ownership) is checked by the caller through
// services.TranslatorMatcher; the aggregate only enforces the transition.
//
// Returns an InvalidTransitionError if the job is not pending. Under
// concurrent accept attempts the repository's version check makes the losing
// caller see exactly this failure.
func (j *Job) Accept(translatorID kernel.UUID, now time.Time) error {
	if err := translatorID.Validate(); err != nil {
		return err
	}

	newStatus, err := j.status.Accept()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.translatorID = &translatorID
	j.acceptedAt = &now
	return nil
}

// Start moves an accepted job to InProgress and records the start timestamp.
func (j *Job) Start(now time.Time) error {
	newStatus, err := j.status.Start()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.startedAt = &now
	return nil
}

// Complete moves an in-progress job to Completed and records the end timestamp.
func (j *Job) Complete(now time.Time) error {
	newStatus, err := j.status.Complete()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.endedAt = &now
	return nil
}

// Cancel moves any non-terminal job to Cancelled. The translator assignment,
// if any, is left in place for auditing. Returns an AlreadyTerminalError if
// the job is already completed, cancelled, or not_called.
func (j *Job) Cancel() error {
	newStatus, err := j.status.Cancel()
	if err != nil {
		return err
	}

	j.status = newStatus
	return nil
}

// MarkNotCalled records that the customer never called in. The translator
// assignment is deliberately kept: the translator held the slot and the
// session remains billable.
func (j *Job) MarkNotCalled(now time.Time) error {
	newStatus, err := j.status.NotCall()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.endedAt = &now
	return nil
}

// Reopen returns a terminal job to Pending, clearing the translator
// assignment and all session timestamps so the job can be claimed afresh.
// Reopening a job that is already pending is a no-op and returns nil.
func (j *Job) Reopen() error {
	if j.status == Pending {
		return nil
	}

	newStatus, err := j.status.Reopen()
	if err != nil {
		return err
	}

	j.status = newStatus
	j.translatorID = nil
	j.acceptedAt = nil
	j.startedAt = nil
	j.endedAt = nil
	j.reminderSent = false
	return nil
}

// MarkReminderSent records that the session reminder push went out.
// Only meaningful for accepted jobs.
func (j *Job) MarkReminderSent() error {
	if j.status != Accepted {
		return NewInvalidTransitionError("mark reminder sent", j.status)
	}
	j.reminderSent = true
	return nil
}

// UpdateDetails changes the mutable booking details. Zero values leave the
// corresponding field unchanged. Rejected on terminal jobs.
func (j *Job) UpdateDetails(startAt time.Time, durationMin int, contactEmail, reference string) error {
	if j.status.IsTerminal() {
		return NewInvalidTransitionError("update", j.status)
	}

	if !startAt.IsZero() {
		if err := j.setStartAt(startAt); err != nil {
			return err
		}
	}
	if durationMin != 0 {
		if err := j.setDurationMin(durationMin); err != nil {
			return err
		}
	}
	if contactEmail != "" {
		if err := j.setContactEmail(contactEmail); err != nil {
			return err
		}
	}
	if reference != "" {
		j.reference = reference
	}
	return nil
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.customerID = id
	return nil
}

func (j *Job) setLanguage(language kernel.Language) error {
	if err := language.Validate(); err != nil {
		return err
	}
	j.language = language
	return nil
}

func (j *Job) setStartAt(startAt time.Time) error {
	if startAt.IsZero() {
		return errs.NewValueIsRequiredError("startAt")
	}
	j.startAt = startAt
	return nil
}

func (j *Job) setDurationMin(durationMin int) error {
	if durationMin < minDurationMin || durationMin > maxDurationMin {
		return errs.NewValueIsOutOfRangeError("durationMin", durationMin, minDurationMin, maxDurationMin)
	}
	j.durationMin = durationMin
	return nil
}

func (j *Job) setContactEmail(email string) error {
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("contactEmail")
	}
	j.contactEmail = email
	return nil
}
