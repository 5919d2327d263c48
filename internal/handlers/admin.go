package handlers

import (
	"net/http"

	"github.com/vitos-sk/MOST/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService *services.AdminService
}

func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

type CreateAdminRequest struct {
	Email    string `json:"email" binding:"required,email" example:"second@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Role     string `json:"role" example:"admin"`
}

type CheckAdminResponse struct {
	IsAdmin bool `json:"isAdmin" example:"false"`
}

// Login godoc
// @Summary      Login to the admin panel
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login data"
// @Success      200 {object} AuthResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	token, err := h.adminService.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, AuthResponse{Token: token})
}

// Check godoc
// @Summary      Check whether an email is on the admin allow-list
// @Description  Fails closed: any lookup problem reports false.
// @Tags         auth
// @Produce      json
// @Param        email query string true "Email to check"
// @Success      200 {object} CheckAdminResponse
// @Router       /api/v1/auth/check [get]
func (h *AdminHandler) Check(c *gin.Context) {
	email := c.Query("email")
	c.JSON(http.StatusOK, CheckAdminResponse{IsAdmin: h.adminService.IsAdmin(email)})
}

// CreateAdmin godoc
// @Summary      Add an admin to the allow-list
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateAdminRequest true "Admin data"
// @Success      201 {object} Admin
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/admins [post]
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	admin, err := h.adminService.Create(req.Email, req.Password, req.Role)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, admin)
}
