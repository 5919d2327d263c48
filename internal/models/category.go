package models

import "time"

type Category struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"size:255;not null" json:"name"`
	Emoji          string    `gorm:"size:16" json:"emoji"`
	QuestionsCount int       `gorm:"not null;default:0" json:"questionsCount"`
	CreatedAt      time.Time `json:"createdAt"`
}
