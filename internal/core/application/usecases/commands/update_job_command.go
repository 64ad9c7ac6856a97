package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrUpdateJobCommandIsNotConstructed = errors.New(
	"UpdateJobCommand must be created via NewUpdateJobCommand constructor",
)

// UpdateJobCommand represents an edit of a job's booking details. Zero
// values mean "leave unchanged"; the aggregate validates whatever is set.
type UpdateJobCommand struct { //nolint:recvcheck //using for validation
	jobID        kernel.UUID
	startAt      time.Time
	durationMin  int
	contactEmail string
	reference    string

	guard guard.ConstructorGuard
}

// NewUpdateJobCommand creates a command to edit a job's details.
func NewUpdateJobCommand(
	jobID kernel.UUID,
	startAt time.Time,
	durationMin int,
	contactEmail string,
	reference string,
) (UpdateJobCommand, error) {
	updateCommand := UpdateJobCommand{
		startAt:      startAt,
		durationMin:  durationMin,
		contactEmail: contactEmail,
		reference:    reference,
		guard:        guard.NewConstructorGuard(),
	}

	if err := updateCommand.setJobID(jobID); err != nil {
		return UpdateJobCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateJobCommandIsNotConstructed if validation fails.
func (c UpdateJobCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being edited.
func (c UpdateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// StartAt returns the new start time, or the zero time to leave it unchanged.
func (c UpdateJobCommand) StartAt() time.Time {
	return c.startAt
}

// DurationMin returns the new duration, or 0 to leave it unchanged.
func (c UpdateJobCommand) DurationMin() int {
	return c.durationMin
}

// ContactEmail returns the new contact email, or empty to leave it unchanged.
func (c UpdateJobCommand) ContactEmail() string {
	return c.contactEmail
}

// Reference returns the new booking reference, or empty to leave it unchanged.
func (c UpdateJobCommand) Reference() string {
	return c.reference
}

func (c *UpdateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
