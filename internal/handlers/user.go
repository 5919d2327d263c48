package handlers

import (
	"net/http"

	"github.com/vitos-sk/MOST/internal/services"
	"github.com/vitos-sk/MOST/internal/telegram"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Init godoc
// @Summary      Register the calling Telegram user if unseen
// @Description  Identity comes from verified init data, not the request body. Returns 201 on first sight, 200 afterwards.
// @Tags         users
// @Produce      json
// @Success      200 {object} User
// @Success      201 {object} User
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/users/init [post]
func (h *UserHandler) Init(c *gin.Context) {
	value, exists := c.Get("telegram_user")
	payload, ok := value.(*telegram.WebAppUser)
	if !exists || !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "missing telegram user"})
		return
	}

	user, created, err := h.userService.GetOrCreate(*payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to register user"})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, user)
}

// List godoc
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} User
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load users"})
		return
	}
	c.JSON(http.StatusOK, users)
}
