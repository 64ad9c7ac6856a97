package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/user"
	"booking/internal/pkg/guard"
)

var ErrCustomerNotCallCommandIsNotConstructed = errors.New(
	"CustomerNotCallCommand must be created via NewCustomerNotCallCommand constructor",
)

// CustomerNotCallCommand records that the customer never called in for an
// accepted or in-progress session. The translator assignment is kept so the
// held slot remains billable.
type CustomerNotCallCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	actorID   kernel.UUID
	actorRole user.Role

	guard guard.ConstructorGuard
}

// NewCustomerNotCallCommand creates a command to mark a job as not called.
func NewCustomerNotCallCommand(jobID, actorID kernel.UUID, actorRole user.Role) (CustomerNotCallCommand, error) {
	notCallCommand := CustomerNotCallCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		notCallCommand.setJobID(jobID),
		notCallCommand.setActorID(actorID),
		notCallCommand.setActorRole(actorRole),
	); err != nil {
		return CustomerNotCallCommand{}, err
	}

	return notCallCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCustomerNotCallCommandIsNotConstructed if validation fails.
func (c CustomerNotCallCommand) Validate() error {
	return c.guard.Validate(ErrCustomerNotCallCommandIsNotConstructed)
}

// JobID returns the identifier of the job being marked.
func (c CustomerNotCallCommand) JobID() kernel.UUID {
	return c.jobID
}

// ActorID returns the identity of the caller.
func (c CustomerNotCallCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the caller's role from the authenticated identity.
func (c CustomerNotCallCommand) ActorRole() user.Role {
	return c.actorRole
}

func (c *CustomerNotCallCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CustomerNotCallCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *CustomerNotCallCommand) setActorRole(actorRole user.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}
