package commands

import (
	"errors"

	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/ports"
	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrNotifyTranslatorsCommandIsNotConstructed = errors.New(
	"NotifyTranslatorsCommand must be created via NewNotifyTranslatorsCommand constructor",
)

// NotifyTranslatorsCommand fans a job announcement out to every eligible
// translator over the selected channels.
type NotifyTranslatorsCommand struct { //nolint:recvcheck //using for validation
	jobID   kernel.UUID
	channel ports.Channel

	guard guard.ConstructorGuard
}

// NewNotifyTranslatorsCommand creates a command to announce a job over the
// given channel ("push", "sms", or "*" for all).
func NewNotifyTranslatorsCommand(jobID kernel.UUID, channel ports.Channel) (NotifyTranslatorsCommand, error) {
	notifyCommand := NotifyTranslatorsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		notifyCommand.setJobID(jobID),
		notifyCommand.setChannel(channel),
	); err != nil {
		return NotifyTranslatorsCommand{}, err
	}

	return notifyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrNotifyTranslatorsCommandIsNotConstructed if validation fails.
func (c NotifyTranslatorsCommand) Validate() error {
	return c.guard.Validate(ErrNotifyTranslatorsCommandIsNotConstructed)
}

// JobID returns the identifier of the job being announced.
func (c NotifyTranslatorsCommand) JobID() kernel.UUID {
	return c.jobID
}

// Channel returns the delivery channel selection.
func (c NotifyTranslatorsCommand) Channel() ports.Channel {
	return c.channel
}

func (c *NotifyTranslatorsCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *NotifyTranslatorsCommand) setChannel(channel ports.Channel) error {
	switch channel {
	case ports.ChannelPush, ports.ChannelSMS, ports.ChannelAll:
		c.channel = channel
		return nil
	default:
		return errs.NewValueIsInvalidError("channel")
	}
}
