package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vitos-sk/MOST/internal/services"

	"github.com/gin-gonic/gin"
)

type VoteHandler struct {
	voteService *services.VoteService
}

func NewVoteHandler(voteService *services.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

type CastVoteRequest struct {
	QuestionID uint   `json:"questionId" binding:"required" example:"1"`
	Choice     string `json:"choice" binding:"required,oneof=A B C" example:"B"`
}

// Cast godoc
// @Summary      Cast or change a vote on a question
// @Description  A repeat vote with the same choice is a no-op on the counters; a changed choice moves the count. The response does not distinguish first vote from revote.
// @Tags         votes
// @Accept       json
// @Produce      json
// @Param        request body CastVoteRequest true "Vote data"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/votes [post]
func (h *VoteHandler) Cast(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	userID := c.GetInt64("user_id")

	if err := h.voteService.Cast(userID, req.QuestionID, req.Choice); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidChoice):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrQuestionNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "question not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record vote"})
		}
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "vote recorded"})
}

// ListByQuestion godoc
// @Summary      List votes for a question
// @Tags         votes
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {array} Vote
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/questions/{id}/votes [get]
func (h *VoteHandler) ListByQuestion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	votes, err := h.voteService.GetByQuestion(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load votes"})
		return
	}
	c.JSON(http.StatusOK, votes)
}

// ListMine godoc
// @Summary      List the caller's votes
// @Tags         votes
// @Produce      json
// @Success      200 {array} Vote
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/users/me/votes [get]
func (h *VoteHandler) ListMine(c *gin.Context) {
	userID := c.GetInt64("user_id")

	votes, err := h.voteService.GetByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load votes"})
		return
	}
	c.JSON(http.StatusOK, votes)
}
