package commands

import (
	"errors"

	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/guard"
)

var ErrCorrectDistanceCommandIsNotConstructed = errors.New(
	"CorrectDistanceCommand must be created via NewCorrectDistanceCommand constructor",
)

// CorrectDistanceCommand carries a distance-feed update for one job. The
// Correction value type owns the field-grouping and flag/comment rules, so a
// command that constructs successfully is already structurally valid.
type CorrectDistanceCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	correction distance.Correction

	guard guard.ConstructorGuard
}

// NewCorrectDistanceCommand creates a command to apply a distance correction.
func NewCorrectDistanceCommand(jobID kernel.UUID, correction distance.Correction) (CorrectDistanceCommand, error) {
	correctCommand := CorrectDistanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		correctCommand.setJobID(jobID),
		correctCommand.setCorrection(correction),
	); err != nil {
		return CorrectDistanceCommand{}, err
	}

	return correctCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCorrectDistanceCommandIsNotConstructed if validation fails.
func (c CorrectDistanceCommand) Validate() error {
	return c.guard.Validate(ErrCorrectDistanceCommandIsNotConstructed)
}

// JobID returns the identifier of the job whose record is corrected.
func (c CorrectDistanceCommand) JobID() kernel.UUID {
	return c.jobID
}

// Correction returns the fields to write.
func (c CorrectDistanceCommand) Correction() distance.Correction {
	return c.correction
}

func (c *CorrectDistanceCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CorrectDistanceCommand) setCorrection(correction distance.Correction) error {
	if err := correction.Validate(); err != nil {
		return err
	}

	c.correction = correction
	return nil
}
