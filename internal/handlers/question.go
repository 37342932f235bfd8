package handlers

import (
	"net/http"
	"strconv"

	"github.com/andrewthebest/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	trivia *services.TriviaService
}

func NewQuestionHandler(trivia *services.TriviaService) *QuestionHandler {
	return &QuestionHandler{trivia: trivia}
}

// pageParam reads the 1-based page query parameter, falling back to the first
// page when it is missing or not an integer.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

// ListQuestions godoc
// @Summary      List questions, ten per page
// @Tags         questions
// @Produce      json
// @Param        page query int false "1-based page number"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	categories, err := h.trivia.ListCategories()
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	questions, err := h.trivia.ListQuestions()
	if err != nil {
		abortWithError(c, http.StatusNotFound)
		return
	}

	page := services.Paginate(questions, pageParam(c))
	if len(page) == 0 {
		abortWithError(c, http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":       page,
		"total_questions": len(questions),
		"categories":      categoryMap(categories),
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} map[string]interface{}
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	// Every failure here reports 422, a missing id included.
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	total, err := h.trivia.DeleteQuestion(uint(id))
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question_deleted": id,
		"total_questions":  total,
	})
}

type CreateOrSearchRequest struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int    `json:"category"`
	SearchTerm string `json:"search_term"`
}

// CreateOrSearchQuestions godoc
// @Summary      Create a question, or search when search_term is set
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        page query int false "1-based page number (search only)"
// @Param        request body CreateOrSearchRequest true "Question data or search term"
// @Success      200 {object} map[string]interface{}
// @Failure      422 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var req CreateOrSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	if req.SearchTerm != "" {
		matches, err := h.trivia.SearchQuestions(req.SearchTerm)
		if err != nil {
			abortWithError(c, http.StatusUnprocessableEntity)
			return
		}

		// Unlike the listing endpoint, an out-of-range page here is an
		// empty 200, not a 404.
		c.JSON(http.StatusOK, gin.H{
			"questions":       services.Paginate(matches, pageParam(c)),
			"total_questions": len(matches),
		})
		return
	}

	question, err := h.trivia.CreateQuestion(services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		Difficulty: req.Difficulty,
		Category:   req.Category,
	})
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	c.JSON(http.StatusOK, gin.H{"question_created": question})
}
