package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrReopenJobCommandIsNotConstructed = errors.New(
	"ReopenJobCommand must be created via NewReopenJobCommand constructor",
)

// ReopenJobCommand returns a terminal job to the pending pool. The previous
// translator assignment is cleared so any eligible translator can claim it
// again. Admin-only; the HTTP layer enforces the role.
type ReopenJobCommand struct { //nolint:recvcheck //using for validation
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReopenJobCommand creates a command to reopen a terminal job.
func NewReopenJobCommand(jobID kernel.UUID) (ReopenJobCommand, error) {
	reopenCommand := ReopenJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := reopenCommand.setJobID(jobID); err != nil {
		return ReopenJobCommand{}, err
	}

	return reopenCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReopenJobCommandIsNotConstructed if validation fails.
func (c ReopenJobCommand) Validate() error {
	return c.guard.Validate(ErrReopenJobCommandIsNotConstructed)
}

// JobID returns the identifier of the job being reopened.
func (c ReopenJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *ReopenJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
