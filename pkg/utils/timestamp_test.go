package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transport-data-service/pkg/errs"
)

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("departure_time", "2024-05-01 08:00")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC), *got)
}

func TestParseTimestamp_EmptyMeansAbsent(t *testing.T) {
	got, err := ParseTimestamp("departure_time", "   ")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestParseTimestamp_Invalid(t *testing.T) {
	for _, value := range []string{
		"01.05.2024 08:00",
		"2024-05-01",
		"2024-05-01 8am",
		"2024-05-01T08:00:00Z",
	} {
		_, err := ParseTimestamp("departure_time", value)
		require.Error(t, err, "value %q must be rejected", value)
		assert.True(t, errs.IsValidation(err))
	}
}

func TestFormatTimestamp_RoundTrip(t *testing.T) {
	got, err := ParseTimestamp("arrival_time", "2024-05-01 17:45")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 17:45", FormatTimestamp(got))
	assert.Equal(t, "", FormatTimestamp(nil))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("id", " 17 ")
	require.NoError(t, err)
	assert.Equal(t, uint(17), id)

	for _, value := range []string{"", "abc", "-1", "1.5"} {
		_, err := ParseID("id", value)
		require.Error(t, err, "value %q must be rejected", value)
		assert.True(t, errs.IsValidation(err))
	}
}
