package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vitos-sk/MOST/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Question{},
		&models.Vote{},
		&models.User{},
		&models.Admin{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestQuestion(t *testing.T, db *gorm.DB, categoryID uint, correct string) *models.Question {
	t.Helper()

	question, err := NewQuestionService(db).Create(QuestionInput{
		CategoryID:    categoryID,
		Code:          "fmt.Println(1 + 1)",
		OptionA:       "2",
		OptionB:       "11",
		OptionC:       "compile error",
		CorrectAnswer: correct,
	})
	if err != nil {
		t.Fatalf("failed to create test question: %v", err)
	}
	return question
}
