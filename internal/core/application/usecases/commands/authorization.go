package commands

import (
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/core/domain/model/user"
	"booking/internal/pkg/errs"
)

// validateJobAccess checks that the actor may operate on the job: admins,
// the booking customer, and the assigned translator qualify. The role comes
// from the authenticated identity, not from a repository lookup.
func validateJobAccess(j *job.Job, actorID kernel.UUID, actorRole user.Role) error {
	if actorRole.IsAdmin() {
		return nil
	}
	if actorID.IsEqual(j.CustomerID()) {
		return nil
	}
	if j.Translator() != nil && j.Translator().IsEqual(actorID) {
		return nil
	}
	return errs.NewUnauthorizedError("actor is neither the customer, the assigned translator, nor an admin")
}
