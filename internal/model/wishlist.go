package model

type AddToWishlistRequest struct {
	QuestID string `json:"quest_id"`
}

type AddToWishlistResponse struct{}

type RemoveFromWishlistRequest struct {
	QuestID string `json:"quest_id"`
}

type RemoveFromWishlistResponse struct{}

type GetWishlistRequest struct{}

type GetWishlistResponse struct {
	Quests []SideQuest `json:"quests"`
}

type StartQuestRequest struct {
	QuestID string `json:"quest_id"`
}

type StartQuestResponse struct {
	ID string `json:"id"`
}
