package models

import "time"

// RevokedToken marks a JWT id as logged out until the token would have
// expired anyway. Rows past ExpiresAt are purged by the scheduler.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:64" json:"jti"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
