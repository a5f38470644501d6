package dateutil

import (
	"fmt"
	"time"

	"github.com/sidequests/backend/internal/entity"
)

func GetCurrentValueByPeriod(p entity.LeaderboardPeriod) (string, error) {
	return GetValueByPeriod(time.Now(), p)
}

func GetValueByPeriod(t time.Time, p entity.LeaderboardPeriod) (string, error) {
	switch p {
	case entity.LeaderboardPeriodWeek:
		year, week := t.ISOWeek()
		return fmt.Sprintf("week/%d/%d", week, year), nil

	case entity.LeaderboardPeriodMonth:
		return fmt.Sprintf("month/%d/%d", t.Month(), t.Year()), nil

	case entity.LeaderboardPeriodTotal:
		return "total", nil

	default:
		return "", fmt.Errorf("leaderboard period must be week, month, or total, but got %s", p)
	}
}
