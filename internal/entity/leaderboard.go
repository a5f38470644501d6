package entity

import "github.com/sidequests/backend/pkg/enum"

type LeaderboardPeriod string

var (
	LeaderboardPeriodWeek  = enum.New(LeaderboardPeriod("week"))
	LeaderboardPeriodMonth = enum.New(LeaderboardPeriod("month"))
	LeaderboardPeriodTotal = enum.New(LeaderboardPeriod("total"))
)
