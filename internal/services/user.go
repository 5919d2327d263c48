package services

import (
	"errors"

	"github.com/vitos-sk/MOST/internal/models"
	"github.com/vitos-sk/MOST/internal/telegram"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreate returns the stored user for a Telegram identity, creating the
// row on first sight. Existing rows are returned as-is, never updated.
func (s *UserService) GetOrCreate(payload telegram.WebAppUser) (*models.User, bool, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", payload.ID).Error; err == nil {
		return &user, false, nil
	}

	user = models.User{
		ID:           payload.ID,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Username:     payload.Username,
		LanguageCode: payload.LanguageCode,
		IsPremium:    payload.IsPremium,
		PhotoURL:     payload.PhotoURL,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

// Get returns nil without an error when the user does not exist.
func (s *UserService) Get(id int64) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetAll() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
