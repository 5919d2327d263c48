package services

import (
	"errors"

	"github.com/vitos-sk/MOST/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type QuestionInput struct {
	CategoryID    uint
	Code          string
	OptionA       string
	OptionB       string
	OptionC       string
	CorrectAnswer string
}

// Create inserts a new question with all vote counters at zero.
func (s *QuestionService) Create(input QuestionInput) (*models.Question, error) {
	if _, ok := counterColumns[input.CorrectAnswer]; !ok {
		return nil, ErrInvalidChoice
	}

	question := models.Question{
		CategoryID:    input.CategoryID,
		Code:          input.Code,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		CorrectAnswer: input.CorrectAnswer,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) GetAll() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// GetByID returns nil without an error when the question does not exist.
func (s *QuestionService) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &question, nil
}

func (s *QuestionService) GetByCategory(categoryID uint) ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Where("category_id = ?", categoryID).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Unanswered returns the questions in a category the user has not voted on
// yet, plus the total number of questions in the category. The total lets
// the caller tell an empty category apart from a fully answered one, since
// both produce an empty unanswered slice.
func (s *QuestionService) Unanswered(userID int64, categoryID uint) ([]models.Question, int, error) {
	questions, err := s.GetByCategory(categoryID)
	if err != nil {
		return nil, 0, err
	}

	var votes []models.Vote
	if err := s.db.Where("user_id = ?", userID).Find(&votes).Error; err != nil {
		return nil, 0, err
	}

	voted := make(map[uint]struct{}, len(votes))
	for _, v := range votes {
		voted[v.QuestionID] = struct{}{}
	}

	unanswered := make([]models.Question, 0, len(questions))
	for _, q := range questions {
		if _, ok := voted[q.ID]; !ok {
			unanswered = append(unanswered, q)
		}
	}
	return unanswered, len(questions), nil
}

// Delete removes a question and its votes in one transaction, so no orphaned
// votes survive the question they point at.
func (s *QuestionService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Question{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrQuestionNotFound
		}
		return tx.Where("question_id = ?", id).Delete(&models.Vote{}).Error
	})
}
