package services

import (
	"testing"

	"github.com/vitos-sk/MOST/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDefaults(t *testing.T) {
	db := newTestDB(t)
	service := NewCategoryService(db)

	category, err := service.Create("Loops", "🔁")
	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.Equal(t, "Loops", category.Name)
	assert.Equal(t, "🔁", category.Emoji)
	assert.Equal(t, 0, category.QuestionsCount)
	assert.False(t, category.CreatedAt.IsZero())
}

func TestGetCategoryByIDAbsent(t *testing.T) {
	db := newTestDB(t)

	category, err := NewCategoryService(db).GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestGetAllCategories(t *testing.T) {
	db := newTestDB(t)
	service := NewCategoryService(db)
	_, err := service.Create("Loops", "🔁")
	require.NoError(t, err)
	_, err = service.Create("Slices", "🍕")
	require.NoError(t, err)

	categories, err := service.GetAll()
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestDeleteCategoryCascades(t *testing.T) {
	db := newTestDB(t)
	service := NewCategoryService(db)
	category, err := service.Create("Loops", "🔁")
	require.NoError(t, err)
	kept, err := service.Create("Slices", "🍕")
	require.NoError(t, err)

	q1 := createTestQuestion(t, db, category.ID, "A")
	q2 := createTestQuestion(t, db, kept.ID, "B")
	voteService := NewVoteService(db)
	require.NoError(t, voteService.Cast(1, q1.ID, "A"))
	require.NoError(t, voteService.Cast(1, q2.ID, "B"))

	require.NoError(t, service.Delete(category.ID))

	var categoryCount, questionCount, voteCount int64
	require.NoError(t, db.Model(&models.Category{}).Count(&categoryCount).Error)
	require.NoError(t, db.Model(&models.Question{}).Count(&questionCount).Error)
	require.NoError(t, db.Model(&models.Vote{}).Count(&voteCount).Error)
	assert.Equal(t, int64(1), categoryCount)
	assert.Equal(t, int64(1), questionCount)
	assert.Equal(t, int64(1), voteCount)

	var remaining models.Question
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, kept.ID, remaining.CategoryID)
}

func TestDeleteCategoryAbsent(t *testing.T) {
	db := newTestDB(t)

	err := NewCategoryService(db).Delete(9999)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
