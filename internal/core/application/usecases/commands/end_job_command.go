package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/user"
	"booking/internal/pkg/guard"
)

var ErrEndJobCommandIsNotConstructed = errors.New(
	"EndJobCommand must be created via NewEndJobCommand constructor",
)

// EndJobCommand represents closing an in-progress session as completed.
// Allowed for the booking customer, the assigned translator, and admins.
type EndJobCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewEndJobCommand creates a command to complete a job's session.
func NewEndJobCommand(jobID, actorID kernel.UUID, actorRole user.Role) (EndJobCommand, error) {
	endCommand := EndJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		endCommand.setJobID(jobID),
		endCommand.setActorID(actorID),
		endCommand.setActorRole(actorRole),
	); err != nil {
		return EndJobCommand{}, err
	}

	return endCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEndJobCommandIsNotConstructed if validation fails.
func (c EndJobCommand) Validate() error {
	return c.guard.Validate(ErrEndJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being completed.
func (c EndJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ActorID returns the identity of the caller.
func (c EndJobCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the caller's role from the authenticated identity.
func (c EndJobCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *EndJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *EndJobCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *EndJobCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
