package model

type User struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Bio       string `json:"bio,omitempty"`
	BirthYear int    `json:"birth_year,omitempty"`
}

type GetUserRequest struct {
	ID string `json:"id"`
}

type GetUserResponse User

type UpdateUserRequest struct {
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	BirthYear int    `json:"birth_year"`
	AvatarURL string `json:"avatar_url"`
}

type UpdateUserResponse struct{}
