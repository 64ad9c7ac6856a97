package commands

import (
	"errors"
	"time"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrExpireOverdueJobsCommandIsNotConstructed = errors.New(
	"ExpireOverdueJobsCommand must be created via NewExpireOverdueJobsCommand constructor",
)

// ExpireOverdueJobsCommand sweeps pending jobs whose scheduled start has
// passed and cancels them. Triggered periodically by the job scheduler.
type ExpireOverdueJobsCommand struct { //nolint:recvcheck //using for validation
	deadline time.Time

	guard guard.ConstructorGuard
}

// NewExpireOverdueJobsCommand creates a command to cancel pending jobs whose
// start time is earlier than the deadline.
func NewExpireOverdueJobsCommand(deadline time.Time) (ExpireOverdueJobsCommand, error) {
	expireCommand := ExpireOverdueJobsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setDeadline(deadline); err != nil {
		return ExpireOverdueJobsCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireOverdueJobsCommandIsNotConstructed if validation fails.
func (c ExpireOverdueJobsCommand) Validate() error {
	return c.guard.Validate(ErrExpireOverdueJobsCommandIsNotConstructed)
}

// Deadline returns the cutoff: pending jobs starting before it are expired.
func (c ExpireOverdueJobsCommand) Deadline() time.Time {
	return c.deadline
}

func (c *ExpireOverdueJobsCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return errs.NewValueIsRequiredError("deadline")
	}

	c.deadline = deadline
	return nil
}
