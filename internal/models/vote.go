package models

import "time"

// Vote holds one user's current choice for one question. The composite
// unique index makes a duplicate (user, question) insert fail at the store
// instead of relying on the check-then-act window.
type Vote struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_user_question" json:"userId"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_user_question;index" json:"questionId"`
	Choice     string    `gorm:"size:1;not null" json:"choice"`
	Timestamp  time.Time `json:"timestamp"`
}
