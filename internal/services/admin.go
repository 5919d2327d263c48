package services

import (
	"errors"
	"time"

	"github.com/vitos-sk/MOST/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AdminService struct {
	db        *gorm.DB
	jwtSecret []byte
}

func NewAdminService(db *gorm.DB, jwtSecret string) *AdminService {
	return &AdminService{db: db, jwtSecret: []byte(jwtSecret)}
}

// IsAdmin reports whether the email is on the allow-list. An empty email, a
// missing row and a failed lookup all report false: authorization fails
// closed and never surfaces an error to the caller.
func (s *AdminService) IsAdmin(email string) bool {
	if email == "" {
		return false
	}

	var count int64
	if err := s.db.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false
	}
	return count > 0
}

func (s *AdminService) Create(email, password, role string) (*models.Admin, error) {
	if email == "" {
		return nil, errors.New("email is required")
	}

	var existing models.Admin
	if err := s.db.First(&existing, "email = ?", email).Error; err == nil {
		return nil, errors.New("admin already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if role == "" {
		role = "admin"
	}
	admin := models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) Login(email, password string) (string, error) {
	var admin models.Admin
	if err := s.db.First(&admin, "email = ?", email).Error; err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	return s.generateToken(admin.Email)
}

func (s *AdminService) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateToken returns the admin email a token was issued for.
func (s *AdminService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}

	email, ok := claims["sub"].(string)
	if !ok || email == "" {
		return "", errors.New("invalid subject in token")
	}
	return email, nil
}
