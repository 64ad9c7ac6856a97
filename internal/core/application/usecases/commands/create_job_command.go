package commands

import (
	"errors"
	"time"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand represents a customer's request to book a translation
// session. Detailed field validation (duration bounds, email shape) happens
// in the Job aggregate; the command only rejects structurally missing input.
//
// Example:
//
//	jobID := kernel.NewUUID()
//	cmd, err := NewCreateJobCommand(jobID, customerID, lang, startAt, 60, "a@b.se", "REF-1")
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create job: %w", err)
//	}
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID        kernel.UUID
	customerID   kernel.UUID
	language     kernel.Language
	startAt      time.Time
	durationMin  int
	contactEmail string
	reference    string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to book a new job. Contact email and
// reference are optional and may be empty.
func NewCreateJobCommand(
	jobID kernel.UUID,
	customerID kernel.UUID,
	language kernel.Language,
	startAt time.Time,
	durationMin int,
	contactEmail string,
	reference string,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		durationMin:  durationMin,
		contactEmail: contactEmail,
		reference:    reference,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setCustomerID(customerID),
		jobCommand.setLanguage(language),
		jobCommand.setStartAt(startAt),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateJobCommandIsNotConstructed if validation fails.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the booking customer's identifier.
func (c CreateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Language returns the language needed for the session.
func (c CreateJobCommand) Language() kernel.Language {
	return c.language
}

// StartAt returns the scheduled session start time.
func (c CreateJobCommand) StartAt() time.Time {
	return c.startAt
}

// DurationMin returns the session length in minutes.
func (c CreateJobCommand) DurationMin() int {
	return c.durationMin
}

// ContactEmail returns the optional contact email.
func (c CreateJobCommand) ContactEmail() string {
	return c.contactEmail
}

// Reference returns the optional customer booking reference.
func (c CreateJobCommand) Reference() string {
	return c.reference
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateJobCommand) setLanguage(language kernel.Language) error {
	if err := language.Validate(); err != nil {
		return err
	}

	c.language = language
	return nil
}

func (c *CreateJobCommand) setStartAt(startAt time.Time) error {
	if startAt.IsZero() {
		return errs.NewValueIsRequiredError("startAt")
	}

	c.startAt = startAt
	return nil
}
