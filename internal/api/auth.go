package api

import "la-cave/internal/model"

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=50" example:"Alice"`
	Email    string `json:"email" validate:"required,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"Secret123"`
	Phone    string `json:"phone" example:"0912345678"`
}

// UpdateProfileRequest 欄位留空表示不修改
// swagger:model api.UpdateProfileRequest
type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,max=50" example:"Alice"`
	Email string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Phone string `json:"phone" example:"0912345678"`
}

// swagger:model api.ForgotPasswordRequest
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email" example:"alice@example.com"`
}

// swagger:model api.ResetPasswordRequest
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6" example:"NewSecret123"`
}

// AuthResponse 登入、註冊與重設密碼成功時的回應
// swagger:model api.AuthResponse
type AuthResponse struct {
	Success bool           `json:"success" example:"true"`
	Token   string         `json:"token"`
	User    *model.Account `json:"user"`
}
