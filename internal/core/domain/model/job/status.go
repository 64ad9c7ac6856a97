package job

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle rule violations. Use errors.Is to classify.
var (
	// ErrInvalidTransition is returned when an operation is not allowed from
	// the job's current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrAlreadyTerminal is returned when cancelling a job that has already
	// reached a terminal status.
	ErrAlreadyTerminal = errors.New("job is already in a terminal status")
)

// InvalidTransitionError reports a rejected lifecycle operation together with
// the status it was attempted from.
type InvalidTransitionError struct {
	Action string
	From   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given
// action attempted from the given status.
func NewInvalidTransitionError(action string, from Status) InvalidTransitionError {
	return InvalidTransitionError{Action: action, From: from}
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s a job in status %s", ErrInvalidTransition, e.Action, e.From)
}

func (e InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// AlreadyTerminalError reports a cancel attempt on a job that already reached
// a terminal status.
type AlreadyTerminalError struct {
	From Status
}

// NewAlreadyTerminalError creates an AlreadyTerminalError for the given status.
func NewAlreadyTerminalError(from Status) AlreadyTerminalError {
	return AlreadyTerminalError{From: from}
}

func (e AlreadyTerminalError) Error() string {
	return fmt.Sprintf("%s: status is %s", ErrAlreadyTerminal, e.From)
}

func (e AlreadyTerminalError) Unwrap() error {
	return ErrAlreadyTerminal
}

// Status represents the lifecycle state of a job. It implements a state
// machine with defined transitions so jobs follow the booking workflow.
//
// State transitions:
//
//	pending ──> accepted ──> in_progress ──> completed
//	   ^           │              │
//	   │           ├──> not_called┤
//	   │           │              │
//	   │           └──> cancelled <┘   (cancel allowed from any non-terminal)
//	   │
//	   └── reopen from any terminal status (translator cleared by the aggregate)
//
// completed, cancelled, and not_called are terminal; the only way out of a
// terminal status is Reopen, which lands the job back in pending.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the job is waiting for a translator.
	Pending

	// Accepted indicates a translator has claimed the job.
	Accepted

	// InProgress indicates the session has started.
	InProgress

	// Completed indicates the session ended normally. Terminal.
	Completed

	// Cancelled indicates the job was called off. Terminal.
	Cancelled

	// NotCalled indicates the customer never called in for the session.
	// Terminal; the translator assignment is deliberately kept so the
	// session can still be billed and audited.
	NotCalled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Accepted:   "accepted",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
		NotCalled:  "not_called",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Accepted:   "accepted",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
		NotCalled:  "not_called",
	}
}

// StatusFromString parses a status name, e.g. from a query parameter.
// Returns Unknown and false for unrecognized input.
func StatusFromString(s string) (Status, bool) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, true
		}
	}
	return Unknown, false
}

// Validate checks if the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid. Used when reconstructing
// jobs from persistence or parsing external input.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return NewInvalidTransitionError("use", s)
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for invalid
// values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is one of the final states
// (completed, cancelled, not_called) from which only Reopen is allowed.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == NotCalled
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - pending -> accepted
//
// Any other source status yields an InvalidTransitionError. Unlike courier
// dispatch systems there is no reassignment: once a translator has claimed
// the job, a second accept loses.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, NewInvalidTransitionError("accept", s)
	}
	return Accepted, nil
}

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - accepted -> in_progress
func (s Status) Start() (Status, error) {
	if s != Accepted {
		return Unknown, NewInvalidTransitionError("start", s)
	}
	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - in_progress -> completed
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return Unknown, NewInvalidTransitionError("end", s)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid from any non-terminal status. Cancelling a job that is already
// completed, cancelled, or not_called yields an AlreadyTerminalError;
// cancellation is idempotent-by-rejection, never silently absorbed.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return Unknown, NewAlreadyTerminalError(s)
	}
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}

// NotCall transitions the status to NotCalled.
//
// Valid transitions:
//   - accepted -> not_called
//   - in_progress -> not_called
func (s Status) NotCall() (Status, error) {
	if s != Accepted && s != InProgress {
		return Unknown, NewInvalidTransitionError("mark not called", s)
	}
	return NotCalled, nil
}

// Reopen transitions a terminal status back to Pending.
//
// Reopening a job that is already pending is accepted and simply yields
// pending again, so a repeated reopen before any further transition is safe.
// Reopening from accepted or in_progress is not allowed; cancel first.
func (s Status) Reopen() (Status, error) {
	if s == Pending {
		return Pending, nil
	}
	if !s.IsTerminal() {
		return Unknown, NewInvalidTransitionError("reopen", s)
	}
	return Pending, nil
}

// ValidateCanHaveTranslator validates consistency between the status and the
// translator assignment when reconstructing a job from persistence.
//
// Rules:
//   - pending jobs must not have a translator
//   - accepted, in_progress, completed, and not_called jobs must have one
//   - cancelled jobs may have either (cancellation keeps whatever was set)
func (s Status) ValidateCanHaveTranslator(hasTranslator bool) error {
	if s == Cancelled {
		return nil
	}

	needsTranslator := s == Accepted || s == InProgress || s == Completed || s == NotCalled
	if needsTranslator && !hasTranslator {
		return NewInvalidTransitionError("restore without translator", s)
	}
	if s == Pending && hasTranslator {
		return NewInvalidTransitionError("restore with translator", s)
	}
	return nil
}
