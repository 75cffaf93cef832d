package models

import "time"

// VerificationType is the delivery channel for a verification code.
type VerificationType string

const (
	VerificationTypeEmail VerificationType = "email"
	VerificationTypeSMS   VerificationType = "sms"
)

// VerificationCode is a single-use code issued to verify a user's contact
// channel. Codes expire and are marked used on successful verification.
type VerificationCode struct {
	Base
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Code      string           `gorm:"size:255;not null" json:"-"`
	Type      VerificationType `gorm:"size:8;not null" json:"type"`
	ExpiresAt time.Time        `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time       `json:"used_at,omitempty"`
}
