package questfilter

import (
	"fmt"

	"github.com/sidequests/backend/internal/entity"
)

// minutesPerUnit is the fixed conversion table the whole app agrees on. A
// month is a flat 30 days; calendar accuracy is not a goal here, stable
// ordering of bands is.
var minutesPerUnit = map[entity.DurationUnit]int64{
	entity.DurationMinutes: 1,
	entity.DurationHours:   60,
	entity.DurationDays:    1440,
	entity.DurationWeeks:   10080,
	entity.DurationMonths:  43200,
}

// ToMinutes normalizes a quest duration for comparison. Unknown units map to
// zero, which sorts them into the smallest band rather than dropping them.
func ToMinutes(value int, unit entity.DurationUnit) int64 {
	return int64(value) * minutesPerUnit[unit]
}

type DurationBand string

const (
	Under15Min  DurationBand = "under-15min"
	Under1Hour  DurationBand = "under-1hour"
	Under4Hours DurationBand = "under-4hours"
	Under1Day   DurationBand = "under-1day"
	Under1Week  DurationBand = "under-1week"
	Under1Month DurationBand = "under-1month"
	Longer      DurationBand = "longer"
)

// upper bounds are inclusive; Longer is everything above a month.
var bandUpperBound = map[DurationBand]int64{
	Under15Min:  15,
	Under1Hour:  60,
	Under4Hours: 240,
	Under1Day:   1440,
	Under1Week:  10080,
	Under1Month: 43200,
}

func (b DurationBand) matches(minutes int64) bool {
	if b == Longer {
		return minutes > bandUpperBound[Under1Month]
	}

	return minutes <= bandUpperBound[b]
}

func toDurationBand(s string) (DurationBand, error) {
	switch DurationBand(s) {
	case Under15Min, Under1Hour, Under4Hours, Under1Day, Under1Week, Under1Month, Longer:
		return DurationBand(s), nil
	}

	return "", fmt.Errorf("unknown duration band %s", s)
}
