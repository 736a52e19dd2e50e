package models

import "time"

type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Action    string `gorm:"size:50;not null;index" json:"action"`
	Entity    string `gorm:"size:50" json:"entity"`
	RequestID string `gorm:"size:64" json:"request_id"`
	Metadata  string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
