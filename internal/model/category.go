package model

type Category struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

type GetListCategoryRequest struct{}

type GetListCategoryResponse struct {
	Categories []Category `json:"categories"`
}

type GetCategoryQuestsRequest struct {
	CategoryID string `json:"category_id"`
	Offset     int    `json:"offset"`
	Limit      int    `json:"limit"`
}

type GetCategoryQuestsResponse struct {
	Quests []SideQuest `json:"quests"`
}
