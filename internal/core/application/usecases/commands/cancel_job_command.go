package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/user"
	"booking/internal/pkg/guard"
)

var ErrCancelJobCommandIsNotConstructed = errors.New(
	"CancelJobCommand must be created via NewCancelJobCommand constructor",
)

// CancelJobCommand represents a request to call off a job. Allowed for the
// booking customer, the assigned translator, and admins.
type CancelJobCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewCancelJobCommand creates a command to cancel a job.
func NewCancelJobCommand(jobID, actorID kernel.UUID, actorRole user.Role) (CancelJobCommand, error) {
	cancelCommand := CancelJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setJobID(jobID),
		cancelCommand.setActorID(actorID),
		cancelCommand.setActorRole(actorRole),
	); err != nil {
		return CancelJobCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelJobCommandIsNotConstructed if validation fails.
func (c CancelJobCommand) Validate() error {
	return c.guard.Validate(ErrCancelJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being cancelled.
func (c CancelJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ActorID returns the identity of the caller.
func (c CancelJobCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the caller's role from the authenticated identity.
func (c CancelJobCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *CancelJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CancelJobCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CancelJobCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
