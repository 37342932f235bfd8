package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/andrewthebest/trivia-api/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	trivia *services.TriviaService
}

func NewQuizHandler(trivia *services.TriviaService) *QuizHandler {
	return &QuizHandler{trivia: trivia}
}

// QuizRequest keeps quiz_category as raw JSON so that a malformed value (a
// bare string, a null, a missing object) fails business validation with 422
// instead of a bind-level 400.
type QuizRequest struct {
	PreviousQuestions []uint          `json:"previous_questions"`
	QuizCategory      json.RawMessage `json:"quiz_category"`
}

type quizCategory struct {
	ID int `json:"id"`
}

// PlayQuiz godoc
// @Summary      Serve the next random unseen question for a quiz round
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Previously served question ids and the quiz category (id 0 means any)"
// @Success      200 {object} map[string]interface{}
// @Failure      422 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest)
		return
	}

	var category *quizCategory
	if err := json.Unmarshal(req.QuizCategory, &category); err != nil || category == nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.trivia.NextQuizQuestion(category.ID, req.PreviousQuestions)
	if err != nil {
		abortWithError(c, http.StatusUnprocessableEntity)
		return
	}

	if question == nil {
		// Quiz complete, every question in the category has been served.
		c.JSON(http.StatusOK, gin.H{"question": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"question": question})
}
