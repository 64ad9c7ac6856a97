package services

import (
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/user"
	"booking/internal/pkg/errs"
)

// TranslatorMatcher is a domain service that decides which translators may
// work on a job. It is consulted both on the accept path (is this specific
// user allowed to claim the job?) and on the notification path (who should
// hear about a new job?).
//
// Eligibility rules:
//   - the user must hold the translator role
//   - the user's skill set must include the job's language
//   - the job's own customer can never translate it
type TranslatorMatcher struct{}

// NewTranslatorMatcher creates a new TranslatorMatcher instance.
func NewTranslatorMatcher() TranslatorMatcher {
	return TranslatorMatcher{}
}

// ValidateEligibility checks whether the candidate may work on the job.
// Returns an errs.UnauthorizedError naming the violated rule, or nil when
// the candidate is eligible.
func (m TranslatorMatcher) ValidateEligibility(j *job.Job, candidate *user.User) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if err := candidate.Validate(); err != nil {
		return err
	}

	if candidate.Role() != user.RoleTranslator {
		return errs.NewUnauthorizedError("only translators can work on jobs")
	}
	if !candidate.SpeaksLanguage(j.Language()) {
		return errs.NewUnauthorizedError("translator does not speak the job's language")
	}
	if candidate.ID().IsEqual(j.CustomerID()) {
		return errs.NewUnauthorizedError("a customer cannot translate their own job")
	}
	return nil
}

// EligibleTranslators filters the candidates down to those allowed to work
// on the job. Ineligible candidates are silently skipped; the order of the
// input is preserved.
func (m TranslatorMatcher) EligibleTranslators(j *job.Job, candidates []*user.User) ([]*user.User, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	eligible := make([]*user.User, 0, len(candidates))
	for _, candidate := range candidates {
		if err := m.ValidateEligibility(j, candidate); err == nil {
			eligible = append(eligible, candidate)
		}
	}
	return eligible, nil
}
