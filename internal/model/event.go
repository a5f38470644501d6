package model

// QuestCompletedEvent is published to the event topic whenever a user
// completes a quest, and consumed by the statistics subscriber.
type QuestCompletedEvent struct {
	UserID      string `json:"user_id"`
	QuestID     string `json:"quest_id"`
	CategoryID  string `json:"category_id,omitempty"`
	CompletedAt string `json:"completed_at"`
}
