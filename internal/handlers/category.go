package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vitos-sk/MOST/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required,max=255" example:"Loops"`
	Emoji string `json:"emoji" binding:"max=16" example:"🔁"`
}

// List godoc
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Success      200 {array} Category
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Get godoc
// @Summary      Get a category by id
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} Category
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
		return
	}

	category, err := h.categoryService.GetByID(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to load category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// Create godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      201 {object} Category
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	category, err := h.categoryService.Create(req.Name, req.Emoji)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// Delete godoc
// @Summary      Delete a category with its questions and votes
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid category id"})
		return
	}

	if err := h.categoryService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "category deleted"})
}
