package services

import (
	"testing"

	"github.com/vitos-sk/MOST/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestionStartsWithZeroCounters(t *testing.T) {
	db := newTestDB(t)
	service := NewQuestionService(db)

	question, err := service.Create(QuestionInput{
		CategoryID:    1,
		Code:          "x := []int{}\nfmt.Println(x[0])",
		OptionA:       "0",
		OptionB:       "panic",
		OptionC:       "compile error",
		CorrectAnswer: "B",
	})
	require.NoError(t, err)
	assert.NotZero(t, question.ID)
	assert.Equal(t, 0, question.VotesOptionA)
	assert.Equal(t, 0, question.VotesOptionB)
	assert.Equal(t, 0, question.VotesOptionC)
	assert.False(t, question.CreatedAt.IsZero())
}

func TestCreateQuestionRejectsBadCorrectAnswer(t *testing.T) {
	db := newTestDB(t)
	service := NewQuestionService(db)

	_, err := service.Create(QuestionInput{
		CategoryID:    1,
		Code:          "fmt.Println(1)",
		OptionA:       "1",
		OptionB:       "2",
		OptionC:       "3",
		CorrectAnswer: "D",
	})
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestGetQuestionByIDAbsent(t *testing.T) {
	db := newTestDB(t)
	service := NewQuestionService(db)

	question, err := service.GetByID(9999)
	require.NoError(t, err)
	assert.Nil(t, question)
}

func TestUnansweredIsSetDifference(t *testing.T) {
	db := newTestDB(t)
	q1 := createTestQuestion(t, db, 1, "A")
	q2 := createTestQuestion(t, db, 1, "B")
	q3 := createTestQuestion(t, db, 1, "C")
	voteService := NewVoteService(db)
	require.NoError(t, voteService.Cast(100, q1.ID, "A"))
	require.NoError(t, voteService.Cast(100, q3.ID, "B"))

	unanswered, total, err := NewQuestionService(db).Unanswered(100, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, unanswered, 1)
	assert.Equal(t, q2.ID, unanswered[0].ID)
}

func TestUnansweredEmptyCategoryVsFullyAnswered(t *testing.T) {
	db := newTestDB(t)
	service := NewQuestionService(db)

	// category 7 has no questions at all
	unanswered, total, err := service.Unanswered(100, 7)
	require.NoError(t, err)
	assert.Empty(t, unanswered)
	assert.Equal(t, 0, total)

	// category 1 has one question and the user answered it
	q1 := createTestQuestion(t, db, 1, "A")
	require.NoError(t, NewVoteService(db).Cast(100, q1.ID, "C"))

	unanswered, total, err = service.Unanswered(100, 1)
	require.NoError(t, err)
	assert.Empty(t, unanswered)
	assert.Equal(t, 1, total)
}

func TestUnansweredIgnoresOtherUsersAndCategories(t *testing.T) {
	db := newTestDB(t)
	q1 := createTestQuestion(t, db, 1, "A")
	other := createTestQuestion(t, db, 2, "A")
	voteService := NewVoteService(db)
	require.NoError(t, voteService.Cast(200, q1.ID, "A"))    // another user
	require.NoError(t, voteService.Cast(100, other.ID, "B")) // another category

	unanswered, total, err := NewQuestionService(db).Unanswered(100, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, unanswered, 1)
	assert.Equal(t, q1.ID, unanswered[0].ID)
}

func TestGetQuestionsByCategory(t *testing.T) {
	db := newTestDB(t)
	createTestQuestion(t, db, 1, "A")
	createTestQuestion(t, db, 1, "B")
	createTestQuestion(t, db, 2, "C")

	questions, err := NewQuestionService(db).GetByCategory(1)
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestDeleteQuestionCascadesVotes(t *testing.T) {
	db := newTestDB(t)
	q1 := createTestQuestion(t, db, 1, "A")
	q2 := createTestQuestion(t, db, 1, "B")
	voteService := NewVoteService(db)
	require.NoError(t, voteService.Cast(1, q1.ID, "A"))
	require.NoError(t, voteService.Cast(2, q1.ID, "B"))
	require.NoError(t, voteService.Cast(1, q2.ID, "C"))

	require.NoError(t, NewQuestionService(db).Delete(q1.ID))

	var questionCount, voteCount int64
	require.NoError(t, db.Model(&models.Question{}).Count(&questionCount).Error)
	require.NoError(t, db.Model(&models.Vote{}).Count(&voteCount).Error)
	assert.Equal(t, int64(1), questionCount)
	assert.Equal(t, int64(1), voteCount)

	var remaining models.Vote
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, q2.ID, remaining.QuestionID)
}

func TestDeleteQuestionAbsent(t *testing.T) {
	db := newTestDB(t)

	err := NewQuestionService(db).Delete(9999)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}
