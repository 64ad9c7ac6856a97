package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrStartJobCommandIsNotConstructed = errors.New(
	"StartJobCommand must be created via NewStartJobCommand constructor",
)

// StartJobCommand represents the assigned translator opening the session.
type StartJobCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	actorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartJobCommand creates a command to start an accepted job's session.
func NewStartJobCommand(jobID, actorID kernel.UUID) (StartJobCommand, error) {
	startCommand := StartJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		startCommand.setJobID(jobID),
		startCommand.setActorID(actorID),
	); err != nil {
		return StartJobCommand{}, err
	}

	return startCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartJobCommandIsNotConstructed if validation fails.
func (c StartJobCommand) Validate() error {
	return c.guard.Validate(ErrStartJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being started.
func (c StartJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// ActorID returns the identity of the caller.
func (c StartJobCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *StartJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *StartJobCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
