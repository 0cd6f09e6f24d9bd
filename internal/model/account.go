// File: internal/model/account.go
package model

import "time"

// Role 帳號角色
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account 登入帳號；密碼雜湊不會輸出到 JSON
type Account struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin 是否為管理員
func (a Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
