package job_test

import (
	"testing"

	"booking/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   job.Status
		expected string
	}{
		{job.Pending, "pending"},
		{job.Accepted, "accepted"},
		{job.InProgress, "in_progress"},
		{job.Completed, "completed"},
		{job.Cancelled, "cancelled"},
		{job.NotCalled, "not_called"},
		{job.Unknown, "unknown"},
		{job.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses_all_valid_names", func(t *testing.T) {
		for _, name := range []string{"pending", "accepted", "in_progress", "completed", "cancelled", "not_called"} {
			status, ok := job.StatusFromString(name)
			require.True(t, ok, name)
			assert.Equal(t, name, status.String())
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		_, ok := job.StatusFromString("assigned")
		assert.False(t, ok)
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("valid_statuses", func(t *testing.T) {
		for _, s := range []job.Status{job.Pending, job.Accepted, job.InProgress, job.Completed, job.Cancelled, job.NotCalled} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("invalid_statuses", func(t *testing.T) {
		require.Error(t, job.Unknown.Validate())
		require.Error(t, job.Status(42).Validate())
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("pending_to_accepted", func(t *testing.T) {
		newStatus, err := job.Pending.Accept()

		require.NoError(t, err)
		assert.Equal(t, job.Accepted, newStatus)
	})

	t.Run("no_reassignment_from_accepted", func(t *testing.T) {
		_, err := job.Accepted.Accept()

		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})

	t.Run("rejected_from_terminal_states", func(t *testing.T) {
		for _, s := range []job.Status{job.Completed, job.Cancelled, job.NotCalled} {
			_, err := s.Accept()
			require.ErrorIs(t, err, job.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_Start(t *testing.T) {
	t.Run("accepted_to_in_progress", func(t *testing.T) {
		newStatus, err := job.Accepted.Start()

		require.NoError(t, err)
		assert.Equal(t, job.InProgress, newStatus)
	})

	t.Run("rejected_from_pending", func(t *testing.T) {
		_, err := job.Pending.Start()

		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("in_progress_to_completed", func(t *testing.T) {
		newStatus, err := job.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, job.Completed, newStatus)
	})

	t.Run("rejected_from_accepted", func(t *testing.T) {
		_, err := job.Accepted.Complete()

		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("allowed_from_non_terminal_states", func(t *testing.T) {
		for _, s := range []job.Status{job.Pending, job.Accepted, job.InProgress} {
			newStatus, err := s.Cancel()
			require.NoError(t, err, s.String())
			assert.Equal(t, job.Cancelled, newStatus)
		}
	})

	t.Run("rejected_from_terminal_states", func(t *testing.T) {
		for _, s := range []job.Status{job.Completed, job.Cancelled, job.NotCalled} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, job.ErrAlreadyTerminal, s.String())
		}
	})
}

func TestStatus_NotCall(t *testing.T) {
	t.Run("allowed_from_accepted_and_in_progress", func(t *testing.T) {
		for _, s := range []job.Status{job.Accepted, job.InProgress} {
			newStatus, err := s.NotCall()
			require.NoError(t, err, s.String())
			assert.Equal(t, job.NotCalled, newStatus)
		}
	})

	t.Run("rejected_from_pending", func(t *testing.T) {
		_, err := job.Pending.NotCall()

		require.ErrorIs(t, err, job.ErrInvalidTransition)
	})
}

func TestStatus_Reopen(t *testing.T) {
	t.Run("terminal_states_return_to_pending", func(t *testing.T) {
		for _, s := range []job.Status{job.Completed, job.Cancelled, job.NotCalled} {
			newStatus, err := s.Reopen()
			require.NoError(t, err, s.String())
			assert.Equal(t, job.Pending, newStatus)
		}
	})

	t.Run("pending_is_noop_reentry", func(t *testing.T) {
		newStatus, err := job.Pending.Reopen()

		require.NoError(t, err)
		assert.Equal(t, job.Pending, newStatus)
	})

	t.Run("rejected_from_active_states", func(t *testing.T) {
		for _, s := range []job.Status{job.Accepted, job.InProgress} {
			_, err := s.Reopen()
			require.ErrorIs(t, err, job.ErrInvalidTransition, s.String())
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, job.Pending.IsTerminal())
	assert.False(t, job.Accepted.IsTerminal())
	assert.False(t, job.InProgress.IsTerminal())
	assert.True(t, job.Completed.IsTerminal())
	assert.True(t, job.Cancelled.IsTerminal())
	assert.True(t, job.NotCalled.IsTerminal())
}

func TestStatus_ValidateCanHaveTranslator(t *testing.T) {
	t.Run("pending_must_not_have_translator", func(t *testing.T) {
		require.NoError(t, job.Pending.ValidateCanHaveTranslator(false))
		require.Error(t, job.Pending.ValidateCanHaveTranslator(true))
	})

	t.Run("active_and_finished_states_require_translator", func(t *testing.T) {
		for _, s := range []job.Status{job.Accepted, job.InProgress, job.Completed, job.NotCalled} {
			require.NoError(t, s.ValidateCanHaveTranslator(true), s.String())
			require.Error(t, s.ValidateCanHaveTranslator(false), s.String())
		}
	})

	t.Run("cancelled_allows_either", func(t *testing.T) {
		require.NoError(t, job.Cancelled.ValidateCanHaveTranslator(true))
		require.NoError(t, job.Cancelled.ValidateCanHaveTranslator(false))
	})
}
