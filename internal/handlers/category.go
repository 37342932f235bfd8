package handlers

import (
	"net/http"
	"strconv"

	"github.com/andrewthebest/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	trivia *services.TriviaService
}

func NewCategoryHandler(trivia *services.TriviaService) *CategoryHandler {
	return &CategoryHandler{trivia: trivia}
}

// ListCategories godoc
// @Summary      List all categories as an id-to-type mapping
// @Tags         categories
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.trivia.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categoryMap(categories)})
}

type CreateCategoryRequest struct {
	Type string `json:"type"`
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request body CreateCategoryRequest true "Category data"
// @Success      200 {object} map[string]interface{}
// @Failure      422 {object} ErrorResponse
// @Router       /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	category, err := h.trivia.CreateCategory(req.Type)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category_created": category})
}

// QuestionsByCategory godoc
// @Summary      List every question in a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	questions, category, err := h.trivia.QuestionsByCategory(uint(id))
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":        questions,
		"total_questions":  len(questions),
		"current_category": category,
	})
}
