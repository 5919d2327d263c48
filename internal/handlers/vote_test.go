package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vitos-sk/MOST/internal/models"
	"github.com/vitos-sk/MOST/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Question{},
		&models.Vote{},
		&models.User{},
		&models.Admin{},
	))
	return db
}

// testRouter wires the Telegram-guarded routes with a stub identity so the
// handler logic is exercised without real init data.
func testRouter(db *gorm.DB, userID int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	voteHandler := NewVoteHandler(services.NewVoteService(db))
	questionHandler := NewQuestionHandler(services.NewQuestionService(db))

	r := gin.New()
	app := r.Group("/api/v1")
	app.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	app.POST("/votes", voteHandler.Cast)
	app.GET("/users/me/votes", voteHandler.ListMine)
	app.GET("/categories/:id/questions/unanswered", questionHandler.ListUnanswered)
	app.GET("/questions/:id", questionHandler.Get)
	return r
}

func seedQuestion(t *testing.T, db *gorm.DB, categoryID uint) *models.Question {
	t.Helper()
	question, err := services.NewQuestionService(db).Create(services.QuestionInput{
		CategoryID:    categoryID,
		Code:          "fmt.Println(len(\"go\"))",
		OptionA:       "2",
		OptionB:       "3",
		OptionC:       "compile error",
		CorrectAnswer: "A",
	})
	require.NoError(t, err)
	return question
}

func TestCastVoteEndpoint(t *testing.T) {
	db := newHandlerTestDB(t)
	question := seedQuestion(t, db, 1)
	r := testRouter(db, 777)

	body := fmt.Sprintf(`{"questionId":%d,"choice":"B"}`, question.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/votes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Question
	require.NoError(t, db.First(&got, question.ID).Error)
	assert.Equal(t, 1, got.VotesOptionB)
}

func TestCastVoteEndpointRejectsBadChoice(t *testing.T) {
	db := newHandlerTestDB(t)
	question := seedQuestion(t, db, 1)
	r := testRouter(db, 777)

	body := fmt.Sprintf(`{"questionId":%d,"choice":"D"}`, question.ID)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/votes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCastVoteEndpointUnknownQuestion(t *testing.T) {
	db := newHandlerTestDB(t)
	r := testRouter(db, 777)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/votes",
		strings.NewReader(`{"questionId":9999,"choice":"A"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUnansweredEndpoint(t *testing.T) {
	db := newHandlerTestDB(t)
	q1 := seedQuestion(t, db, 1)
	seedQuestion(t, db, 1)
	require.NoError(t, services.NewVoteService(db).Cast(777, q1.ID, "A"))
	r := testRouter(db, 777)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/1/questions/unanswered", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp UnansweredResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.TotalInCategory)
	require.Len(t, resp.Questions, 1)
	assert.NotEqual(t, q1.ID, resp.Questions[0].ID)
}

func TestGetQuestionEndpointNotFound(t *testing.T) {
	db := newHandlerTestDB(t)
	r := testRouter(db, 777)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions/9999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
