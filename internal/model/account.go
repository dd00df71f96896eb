package model

import (
	"time"
)

type Account struct {
	ID             uint64     `gorm:"primaryKey" json:"id"`
	ExternalUserID string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_external_user_id" json:"externalUserId"`
	Username       string     `gorm:"type:varchar(128);not null" json:"username"`
	AccessToken    string     `gorm:"type:varchar(512);not null" json:"-"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt"`
	IsActive       bool       `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

func (Account) TableName() string {
	return "accounts"
}
