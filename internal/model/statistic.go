package model

type LeaderboardEntry struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name,omitempty"`
	CompletedCount int64  `json:"completed_count"`
}

type GetLeaderboardRequest struct {
	Period string `json:"period"` // week, month, total
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type GetLeaderboardResponse struct {
	Entries []LeaderboardEntry `json:"entries"`
}
