package services

import (
	"errors"

	"github.com/vitos-sk/MOST/internal/models"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) Create(name, emoji string) (*models.Category, error) {
	category := models.Category{
		Name:  name,
		Emoji: emoji,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID returns nil without an error when the category does not exist.
func (s *CategoryService) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// Delete removes a category together with its questions and their votes.
func (s *CategoryService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Category{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCategoryNotFound
		}

		var questionIDs []uint
		if err := tx.Model(&models.Question{}).
			Where("category_id = ?", id).
			Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) == 0 {
			return nil
		}

		if err := tx.Where("question_id IN ?", questionIDs).
			Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		return tx.Where("category_id = ?", id).Delete(&models.Question{}).Error
	})
}
