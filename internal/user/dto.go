package user

type GetProfileResponse struct {
	ID       uint32 `json:"id"`
	SignID   string `json:"sign_id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email,omitempty"`
}
