package dto

import "time"

// ConnectAccountDTO 接入账号
type ConnectAccountDTO struct {
	AccessToken    string     `json:"access_token" binding:"required" validate:"min=10"`
	UserID         string     `json:"user_id" binding:"required" validate:"max=64"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
}

// ConnectAccountResultDTO 接入结果
type ConnectAccountResultDTO struct {
	AccountID uint64 `json:"account_id"`
	Created   bool   `json:"created"`
}

// AccountDTO 账号列表项
type AccountDTO struct {
	ID             uint64     `json:"id"`
	Username       string     `json:"username"`
	IsActive       bool       `json:"is_active"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
