package models

import "time"

// User mirrors the Telegram WebApp user payload. The primary key is the
// Telegram id itself; rows are written once on first sight and never updated.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FirstName    string    `gorm:"size:255" json:"firstName"`
	LastName     string    `gorm:"size:255" json:"lastName"`
	Username     string    `gorm:"size:255" json:"username"`
	LanguageCode string    `gorm:"size:16" json:"languageCode"`
	IsPremium    bool      `gorm:"not null;default:false" json:"isPremium"`
	PhotoURL     string    `gorm:"size:1024" json:"photoUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}
