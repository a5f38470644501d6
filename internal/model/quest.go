package model

type SideQuest struct {
	ID            string   `json:"id,omitempty"`
	Name          string   `json:"name,omitempty"`
	Description   string   `json:"description,omitempty"`
	Category      Category `json:"category,omitempty"`
	Difficulty    int      `json:"difficulty,omitempty"`
	Uniqueness    int      `json:"uniqueness,omitempty"`
	LocationType  string   `json:"location_type,omitempty"`
	LocationText  string   `json:"location_text,omitempty"`
	Latitude      float64  `json:"latitude,omitempty"`
	Longitude     float64  `json:"longitude,omitempty"`
	Cost          float64  `json:"cost,omitempty"`
	DurationValue int      `json:"duration_value,omitempty"`
	DurationUnit  string   `json:"duration_unit,omitempty"`
	PhotoURL      string   `json:"photo_url,omitempty"`
	IsPublic      bool     `json:"is_public,omitempty"`
	CreatedBy     string   `json:"created_by,omitempty"`
	SourceQuestID string   `json:"source_quest_id,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`

	IsCompleted        bool   `json:"is_completed,omitempty"`
	CompletedAt        string `json:"completed_at,omitempty"`
	CompletionNotes    string `json:"completion_notes,omitempty"`
	CompletionPhotoURL string `json:"completion_photo_url,omitempty"`
}

type QuestStep struct {
	StepOrder   int    `json:"step_order"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type StepProgress struct {
	StepOrder   int    `json:"step_order"`
	CompletedAt string `json:"completed_at,omitempty"`
}

type CreateQuestRequest struct {
	Name          string      `json:"name"`
	Description   string      `json:"description"`
	CategoryID    string      `json:"category_id"`
	Difficulty    int         `json:"difficulty"`
	Uniqueness    int         `json:"uniqueness"`
	LocationType  string      `json:"location_type"`
	LocationText  string      `json:"location_text"`
	Latitude      float64     `json:"latitude"`
	Longitude     float64     `json:"longitude"`
	Cost          float64     `json:"cost"`
	DurationValue int         `json:"duration_value"`
	DurationUnit  string      `json:"duration_unit"`
	PhotoURL      string      `json:"photo_url"`
	IsPublic      *bool       `json:"is_public"`
	Steps         []QuestStep `json:"steps"`
}

type CreateQuestResponse struct {
	ID string `json:"id"`
}

type GetQuestRequest struct {
	ID string `json:"id"`
}

type GetQuestResponse struct {
	SideQuest
	Steps []QuestStep `json:"steps,omitempty"`
}

type GetListQuestRequest struct {
	Q       string `json:"q"`
	Filters string `json:"filters"` // comma-separated feed filter tags
	Offset  int    `json:"offset"`
	Limit   int    `json:"limit"`

	ExcludeOwned bool `json:"exclude_owned"`
}

type GetListQuestResponse struct {
	Quests []SideQuest `json:"quests"`
}

type GetNearbyQuestsRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	RadiusKm  float64 `json:"radius_km"`
	Limit     int     `json:"limit"`
}

type GetNearbyQuestsResponse struct {
	Quests []SideQuest `json:"quests"`
}

type UpdateQuestRequest struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	CategoryID    string  `json:"category_id"`
	Difficulty    int     `json:"difficulty"`
	Uniqueness    int     `json:"uniqueness"`
	LocationType  string  `json:"location_type"`
	LocationText  string  `json:"location_text"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Cost          float64 `json:"cost"`
	DurationValue int     `json:"duration_value"`
	DurationUnit  string  `json:"duration_unit"`
	PhotoURL      string  `json:"photo_url"`
}

type UpdateQuestResponse struct{}

type DeleteQuestRequest struct {
	ID string `json:"id"`
}

type DeleteQuestResponse struct{}

type AddToMyQuestsRequest struct {
	QuestID string `json:"quest_id"`
}

type AddToMyQuestsResponse struct {
	ID string `json:"id"`
	// AlreadyAdded reports that an owned copy with the same fingerprint
	// existed and no new row was created.
	AlreadyAdded bool `json:"already_added,omitempty"`
}

type GetMyQuestsRequest struct{}

type GetMyQuestsResponse struct {
	Quests []SideQuest `json:"quests"`
}

type GetJournalRequest struct{}

type GetJournalResponse struct {
	Quests []SideQuest `json:"quests"`
}

type CompleteQuestRequest struct {
	ID                 string `json:"id"`
	CompletionNotes    string `json:"completion_notes"`
	CompletionPhotoURL string `json:"completion_photo_url"`
}

type CompleteQuestResponse struct{}

type RemoveQuestRequest struct {
	ID string `json:"id"`
}

type RemoveQuestResponse struct{}

type GetQuestStepsRequest struct {
	QuestID string `json:"quest_id"`
}

type GetQuestStepsResponse struct {
	Steps []QuestStep `json:"steps"`
}

type GetStepProgressRequest struct {
	UserQuestID string `json:"user_quest_id"`
}

type GetStepProgressResponse struct {
	Progress []StepProgress `json:"progress"`
}

type CompleteQuestStepRequest struct {
	UserQuestID string `json:"user_quest_id"`
	StepOrder   int    `json:"step_order"`
}

type CompleteQuestStepResponse struct{}

type UncompleteQuestStepRequest struct {
	UserQuestID string `json:"user_quest_id"`
	StepOrder   int    `json:"step_order"`
}

type UncompleteQuestStepResponse struct{}

type FilterQuestsRequest struct {
	Type   string `json:"type"`
	Value  string `json:"value"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type FilterQuestsResponse struct {
	Quests []SideQuest `json:"quests"`
}
