package distance_test

import (
	"testing"

	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewDistance(t *testing.T) {
	t.Run("creates_empty_record", func(t *testing.T) {
		jobID := kernel.NewUUID()

		d, err := distance.NewDistance(jobID)

		require.NoError(t, err)
		assert.True(t, d.JobID().IsEqual(jobID))
		assert.Empty(t, d.DistanceValue())
		assert.Empty(t, d.Time())
		assert.False(t, d.Flagged())
		require.NoError(t, d.Validate())
	})

	t.Run("rejects_invalid_job_id", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := distance.NewDistance(zeroID)

		require.Error(t, err)
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var d distance.Distance

		require.ErrorIs(t, d.Validate(), distance.ErrDistanceIsNotConstructed)
	})
}

func TestRestoreDistance(t *testing.T) {
	d, err := distance.RestoreDistance(kernel.NewUUID(), "12.4 km", "25 min", "01:10:00", "checked", true, true, false)

	require.NoError(t, err)
	assert.Equal(t, "12.4 km", d.DistanceValue())
	assert.Equal(t, "25 min", d.Time())
	assert.Equal(t, "01:10:00", d.SessionTime())
	assert.Equal(t, "checked", d.AdminComments())
	assert.True(t, d.Flagged())
	assert.True(t, d.ManuallyHandled())
	assert.False(t, d.ByAdmin())
}

func TestNewCorrection(t *testing.T) {
	t.Run("flagged_requires_comment", func(t *testing.T) {
		_, err := distance.NewCorrection(nil, nil, nil, nil, boolPtr(true), nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("flagged_with_empty_comment_rejected", func(t *testing.T) {
		_, err := distance.NewCorrection(nil, nil, nil, strPtr(""), boolPtr(true), nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unflagging_needs_no_comment", func(t *testing.T) {
		_, err := distance.NewCorrection(nil, nil, nil, nil, boolPtr(false), nil, nil)

		require.NoError(t, err)
	})

	t.Run("empty_correction_is_constructible", func(t *testing.T) {
		c, err := distance.NewCorrection(nil, nil, nil, nil, nil, nil, nil)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("zero_value_fails_validate", func(t *testing.T) {
		var c distance.Correction

		require.Error(t, c.Validate())
	})
}

func TestDistance_ApplyCorrection(t *testing.T) {
	newRecord := func(t *testing.T) *distance.Distance {
		t.Helper()
		d, err := distance.RestoreDistance(kernel.NewUUID(), "10 km", "20 min", "01:00:00", "old note", true, true, true)
		require.NoError(t, err)
		return d
	}

	t.Run("empty_correction_is_rejected", func(t *testing.T) {
		d := newRecord(t)
		c, err := distance.NewCorrection(nil, nil, nil, nil, nil, nil, nil)
		require.NoError(t, err)

		require.ErrorIs(t, d.ApplyCorrection(c), distance.ErrNothingToCorrect)
	})

	t.Run("blank_string_fields_count_as_absent", func(t *testing.T) {
		d := newRecord(t)
		c, err := distance.NewCorrection(strPtr(""), nil, nil, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())

		require.ErrorIs(t, d.ApplyCorrection(c), distance.ErrNothingToCorrect)

		assert.Equal(t, "10 km", d.DistanceValue(), "blank distance must not wipe the record")
		assert.Equal(t, "20 min", d.Time())
	})

	t.Run("blank_member_does_not_block_the_other", func(t *testing.T) {
		d := newRecord(t)
		c, err := distance.NewCorrection(strPtr(""), strPtr("45 min"), nil, nil, nil, nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.ApplyCorrection(c))

		assert.Empty(t, d.DistanceValue(), "blank member is reset with the group")
		assert.Equal(t, "45 min", d.Time())
	})

	t.Run("blank_annotation_strings_count_as_absent", func(t *testing.T) {
		d := newRecord(t)
		c, err := distance.NewCorrection(nil, nil, strPtr(""), strPtr(""), nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())

		require.ErrorIs(t, d.ApplyCorrection(c), distance.ErrNothingToCorrect)

		assert.Equal(t, "old note", d.AdminComments())
		assert.True(t, d.Flagged())
	})

	t.Run("measurement_group_written_together", func(t *testing.T) {
		d := newRecord(t)
		c, err := distance.NewCorrection(strPtr("15 km"), nil, nil, nil, nil, nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.ApplyCorrection(c))

		assert.Equal(t, "15 km", d.DistanceValue())
		assert.Empty(t, d.Time(), "absent member of the measurement group is reset")
		assert.Equal(t, "old note", d.AdminComments(), "annotation group untouched")
		assert.True(t, d.Flagged())
	})

	t.Run("annotation_group_written_together", func(t *testing.T) {
		d := newRecord(t)
		c, err := distance.NewCorrection(nil, nil, strPtr("00:45:00"), strPtr("reviewed"), nil, nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.ApplyCorrection(c))

		assert.Equal(t, "00:45:00", d.SessionTime())
		assert.Equal(t, "reviewed", d.AdminComments())
		assert.False(t, d.Flagged(), "absent members of the annotation group are reset")
		assert.False(t, d.ManuallyHandled())
		assert.False(t, d.ByAdmin())
		assert.Equal(t, "10 km", d.DistanceValue(), "measurement group untouched")
		assert.Equal(t, "20 min", d.Time())
	})

	t.Run("full_correction", func(t *testing.T) {
		d := newRecord(t)
		c, err := distance.NewCorrection(
			strPtr("8 km"), strPtr("12 min"),
			strPtr("00:30:00"), strPtr("flag: wrong address"),
			boolPtr(true), boolPtr(true), boolPtr(true),
		)
		require.NoError(t, err)

		require.NoError(t, d.ApplyCorrection(c))

		assert.Equal(t, "8 km", d.DistanceValue())
		assert.Equal(t, "12 min", d.Time())
		assert.Equal(t, "00:30:00", d.SessionTime())
		assert.Equal(t, "flag: wrong address", d.AdminComments())
		assert.True(t, d.Flagged())
		assert.True(t, d.ManuallyHandled())
		assert.True(t, d.ByAdmin())
	})

	t.Run("unconstructed_correction_rejected", func(t *testing.T) {
		d := newRecord(t)
		var c distance.Correction

		require.Error(t, d.ApplyCorrection(c))
	})
}
