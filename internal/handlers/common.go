package handlers

import (
	"net/http"

	"github.com/andrewthebest/trivia-api/internal/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform body returned with every non-2xx status.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"422"`
	Message string `json:"message" example:"Unprocessable"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "You request is not valid",
	http.StatusNotFound:            "Resource not found",
	http.StatusMethodNotAllowed:    "Method not allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Internal server error",
}

func abortWithError(c *gin.Context, status int) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: errorMessages[status],
	})
}

// NoRoute and NoMethod give gin's framework-level misses the same body shape
// as handler failures.
func NoRoute(c *gin.Context) {
	abortWithError(c, http.StatusNotFound)
}

func NoMethod(c *gin.Context) {
	abortWithError(c, http.StatusMethodNotAllowed)
}

// categoryMap flattens categories into the id-to-type mapping used by the
// listing endpoints. Always non-nil so an empty store serializes as {}.
func categoryMap(categories []models.Category) map[uint]string {
	m := make(map[uint]string, len(categories))
	for _, category := range categories {
		m[category.ID] = category.Type
	}
	return m
}
