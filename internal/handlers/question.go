package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vitos-sk/MOST/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type CreateQuestionRequest struct {
	Category      uint   `json:"category" binding:"required" example:"1"`
	Code          string `json:"code" binding:"required" example:"for i := 0; i < 3; i++ { fmt.Print(i) }"`
	OptionA       string `json:"optionA" binding:"required,max=500" example:"012"`
	OptionB       string `json:"optionB" binding:"required,max=500" example:"123"`
	OptionC       string `json:"optionC" binding:"required,max=500" example:"compile error"`
	CorrectAnswer string `json:"correctAnswer" binding:"required,oneof=A B C" example:"A"`
}

type UnansweredResponse struct {
	Questions       []Question `json:"questions"`
	TotalInCategory int        `json:"totalInCategory" example:"5"`
}

// Get godoc
// @Summary      Get a question with its vote counters
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [get]
func (h *QuestionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	question, err := h.questionService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load question"})
		return
	}
	if question == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "question not found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

// ListAll godoc
// @Summary      List all questions
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Question
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/questions [get]
func (h *QuestionHandler) ListAll(c *gin.Context) {
	questions, err := h.questionService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// ListByCategory godoc
// @Summary      List questions in a category
// @Tags         questions
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {array} Question
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/categories/{id}/questions [get]
func (h *QuestionHandler) ListByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
		return
	}

	questions, err := h.questionService.GetByCategory(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load questions"})
		return
	}
	c.JSON(http.StatusOK, questions)
}

// ListUnanswered godoc
// @Summary      List questions in a category the caller has not voted on
// @Description  totalInCategory distinguishes an empty category from a fully answered one.
// @Tags         questions
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} UnansweredResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/categories/{id}/questions/unanswered [get]
func (h *QuestionHandler) ListUnanswered(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
		return
	}
	userID := c.GetInt64("user_id")

	questions, total, err := h.questionService.Unanswered(userID, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load questions"})
		return
	}
	c.JSON(http.StatusOK, UnansweredResponse{Questions: questions, TotalInCategory: total})
}

// Create godoc
// @Summary      Create a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/questions [post]
func (h *QuestionHandler) Create(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.questionService.Create(services.QuestionInput{
		CategoryID:    req.Category,
		Code:          req.Code,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		CorrectAnswer: req.CorrectAnswer,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidChoice) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create question"})
		return
	}
	c.JSON(http.StatusCreated, question)
}

// Delete godoc
// @Summary      Delete a question and its votes
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/questions/{id} [delete]
func (h *QuestionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	if err := h.questionService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrQuestionNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "question not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete question"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "question deleted"})
}
