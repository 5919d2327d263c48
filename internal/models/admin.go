package models

import "time"

// Admin is an allow-list entry keyed by email. Presence of the row grants
// admin access; the password hash backs the panel login.
type Admin struct {
	Email        string    `gorm:"primaryKey;size:255" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:32;not null;default:admin" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
