package model

import (
	"time"
)

type Template struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	AccountID  uint64    `gorm:"not null;index:idx_account_id" json:"accountId"`
	Category   string    `gorm:"type:varchar(32);not null" json:"category"`
	Template   string    `gorm:"type:varchar(2200);not null" json:"template"`
	IsActive   bool      `gorm:"type:tinyint(1);not null;default:1" json:"isActive"`
	UsageCount int       `gorm:"not null;default:0" json:"usageCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (Template) TableName() string {
	return "templates"
}
