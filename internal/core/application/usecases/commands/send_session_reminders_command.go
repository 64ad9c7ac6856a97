package commands

import (
	"errors"
	"time"

	"booking/internal/pkg/errs"
	"booking/internal/pkg/guard"
)

var ErrSendSessionRemindersCommandIsNotConstructed = errors.New(
	"SendSessionRemindersCommand must be created via NewSendSessionRemindersCommand constructor",
)

// SendSessionRemindersCommand pushes a reminder to the assigned translator of
// every accepted job starting within the window. Triggered periodically by
// the job scheduler; the reminder-sent flag keeps sweeps from re-notifying.
type SendSessionRemindersCommand struct { //nolint:recvcheck //using for validation
	now    time.Time
	window time.Duration

	guard guard.ConstructorGuard
}

// NewSendSessionRemindersCommand creates a command to remind translators of
// sessions starting in (now, now+window].
func NewSendSessionRemindersCommand(now time.Time, window time.Duration) (SendSessionRemindersCommand, error) {
	remindCommand := SendSessionRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		remindCommand.setNow(now),
		remindCommand.setWindow(window),
	); err != nil {
		return SendSessionRemindersCommand{}, err
	}

	return remindCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSendSessionRemindersCommandIsNotConstructed if validation fails.
func (c SendSessionRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendSessionRemindersCommandIsNotConstructed)
}

// Now returns the sweep's reference time.
func (c SendSessionRemindersCommand) Now() time.Time {
	return c.now
}

// Window returns how far ahead of the session start reminders go out.
func (c SendSessionRemindersCommand) Window() time.Duration {
	return c.window
}

func (c *SendSessionRemindersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}

func (c *SendSessionRemindersCommand) setWindow(window time.Duration) error {
	if window <= 0 {
		return errs.NewValueIsInvalidError("window")
	}

	c.window = window
	return nil
}
