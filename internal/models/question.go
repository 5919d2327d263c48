package models

import "time"

// Question is a multiple-choice question whose statement is a code snippet.
// The per-option counters are mutated only through VoteService and always
// equal the number of vote rows pointing at that option.
type Question struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CategoryID    uint      `gorm:"not null;index" json:"category"`
	Code          string    `gorm:"type:text;not null" json:"code"`
	OptionA       string    `gorm:"size:500;not null" json:"optionA"`
	OptionB       string    `gorm:"size:500;not null" json:"optionB"`
	OptionC       string    `gorm:"size:500;not null" json:"optionC"`
	CorrectAnswer string    `gorm:"size:1;not null" json:"correctAnswer"`
	VotesOptionA  int       `gorm:"not null;default:0" json:"votesOptionA"`
	VotesOptionB  int       `gorm:"not null;default:0" json:"votesOptionB"`
	VotesOptionC  int       `gorm:"not null;default:0" json:"votesOptionC"`
	CreatedAt     time.Time `json:"createdAt"`
}
