package questfilter

import (
	"testing"

	"github.com/sidequests/backend/internal/entity"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	require.Equal(t, int64(30), ToMinutes(30, entity.DurationMinutes))
	require.Equal(t, int64(120), ToMinutes(2, entity.DurationHours))
	require.Equal(t, int64(2880), ToMinutes(2, entity.DurationDays))
	require.Equal(t, int64(10080), ToMinutes(1, entity.DurationWeeks))
	require.Equal(t, int64(43200), ToMinutes(1, entity.DurationMonths))
	require.Equal(t, int64(0), ToMinutes(5, entity.DurationUnit("fortnights")))
}

func TestDurationBand_InclusiveBounds(t *testing.T) {
	bands := []struct {
		band  DurationBand
		bound int64
	}{
		{Under15Min, 15},
		{Under1Hour, 60},
		{Under4Hours, 240},
		{Under1Day, 1440},
		{Under1Week, 10080},
		{Under1Month, 43200},
	}

	for _, tc := range bands {
		require.True(t, tc.band.matches(tc.bound), "%s must include its bound", tc.band)
		require.False(t, tc.band.matches(tc.bound+1), "%s must exclude bound+1", tc.band)
	}

	require.False(t, Longer.matches(43200))
	require.True(t, Longer.matches(43201))
}

func TestDurationBand_Nesting(t *testing.T) {
	ordered := []DurationBand{
		Under15Min, Under1Hour, Under4Hours, Under1Day, Under1Week, Under1Month,
	}

	// A duration inside a band is inside every wider band too.
	for i, narrow := range ordered {
		minutes := bandUpperBound[narrow]
		for _, wide := range ordered[i:] {
			require.True(t, wide.matches(minutes))
		}
	}
}

func TestToDurationBand(t *testing.T) {
	band, err := toDurationBand("under-4hours")
	require.NoError(t, err)
	require.Equal(t, Under4Hours, band)

	_, err = toDurationBand("under-2days")
	require.Error(t, err)
}
