package model

type AccessToken struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

func (r RegisterResponse) AccessTokenInfo() string {
	return r.AccessToken
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

func (r LoginResponse) AccessTokenInfo() string {
	return r.AccessToken
}

type OAuth2VerifyRequest struct {
	Service string `json:"service"`
	IDToken string `json:"id_token"`
}

type OAuth2VerifyResponse struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}

func (r OAuth2VerifyResponse) AccessTokenInfo() string {
	return r.AccessToken
}

func (r OAuth2VerifyResponse) SessionInfo() map[string]any {
	return map[string]any{"user_id": r.UserID}
}
