package services

import (
	"errors"
	"time"

	"github.com/vitos-sk/MOST/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInvalidChoice    = errors.New("choice must be A, B or C")
	ErrQuestionNotFound = errors.New("question not found")
)

// counterColumns maps a choice to the question column that counts it.
var counterColumns = map[string]string{
	"A": "votes_option_a",
	"B": "votes_option_b",
	"C": "votes_option_c",
}

type VoteService struct {
	db *gorm.DB
}

func NewVoteService(db *gorm.DB) *VoteService {
	return &VoteService{db: db}
}

// Cast records the user's choice for a question. The first vote inserts a
// vote row and bumps the matching counter; a revote with a different choice
// rewrites the row and moves one count from the old option to the new one; a
// revote with the same choice only refreshes the timestamp. The vote row and
// the counter deltas commit in one transaction, so the counters never drift
// from the vote rows. The caller is not told whether this was a first vote
// or a revote.
func (s *VoteService) Cast(userID int64, questionID uint, choice string) error {
	column, ok := counterColumns[choice]
	if !ok {
		return ErrInvalidChoice
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var question models.Question
		if err := tx.First(&question, questionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrQuestionNotFound
			}
			return err
		}

		var vote models.Vote
		err := tx.Where("user_id = ? AND question_id = ?", userID, questionID).
			First(&vote).Error

		switch {
		case err == nil:
			oldChoice := vote.Choice
			vote.Choice = choice
			vote.Timestamp = time.Now()
			if err := tx.Save(&vote).Error; err != nil {
				return err
			}
			if oldChoice == choice {
				return nil
			}
			if oldColumn, known := counterColumns[oldChoice]; known {
				if err := incrementCounter(tx, questionID, oldColumn, -1); err != nil {
					return err
				}
			}
			return incrementCounter(tx, questionID, column, 1)

		case errors.Is(err, gorm.ErrRecordNotFound):
			vote = models.Vote{
				UserID:     userID,
				QuestionID: questionID,
				Choice:     choice,
				Timestamp:  time.Now(),
			}
			if err := tx.Create(&vote).Error; err != nil {
				return err
			}
			return incrementCounter(tx, questionID, column, 1)

		default:
			return err
		}
	})
}

func incrementCounter(tx *gorm.DB, questionID uint, column string, delta int) error {
	return tx.Model(&models.Question{}).
		Where("id = ?", questionID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

func (s *VoteService) GetByQuestion(questionID uint) ([]models.Vote, error) {
	var votes []models.Vote
	if err := s.db.Where("question_id = ?", questionID).Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}

func (s *VoteService) GetByUser(userID int64) ([]models.Vote, error) {
	var votes []models.Vote
	if err := s.db.Where("user_id = ?", userID).Find(&votes).Error; err != nil {
		return nil, err
	}
	return votes, nil
}
