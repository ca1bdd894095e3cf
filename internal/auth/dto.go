package auth

type SignupRequest struct {
	SignID      string `json:"sign_id" binding:"required,min=4,max=20"`
	Nickname    string `json:"nickname" binding:"required,min=1,max=20"`
	Email       string `json:"email" binding:"omitempty,email,max=50"`
	PhoneNumber string `json:"phoneNumber" binding:"omitempty,phone"`
	Password    string `json:"password" binding:"required,min=8,max=15"`
}

type LoginRequest struct {
	SignID   string `json:"sign_id" binding:"required,min=4,max=20"`
	Password string `json:"password" binding:"required,min=8,max=15"`
}

type LoginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
