package services

import (
	"testing"

	"github.com/andrewthebest/trivia-api/internal/models"

	"github.com/stretchr/testify/assert"
)

func makeQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{ID: uint(i + 1)}
	}
	return questions
}

func TestPaginateFirstPage(t *testing.T) {
	page := Paginate(makeQuestions(25), 1)

	assert.Len(t, page, QuestionsPerPage)
	assert.Equal(t, uint(1), page[0].ID)
	assert.Equal(t, uint(10), page[9].ID)
}

func TestPaginatePartialLastPage(t *testing.T) {
	page := Paginate(makeQuestions(25), 3)

	assert.Len(t, page, 5)
	assert.Equal(t, uint(21), page[0].ID)
}

func TestPaginateBeyondEnd(t *testing.T) {
	assert.Empty(t, Paginate(makeQuestions(25), 4))
	assert.Empty(t, Paginate(makeQuestions(25), 1000))
}

func TestPaginateBeforeFirstPage(t *testing.T) {
	assert.Empty(t, Paginate(makeQuestions(25), 0))
	assert.Empty(t, Paginate(makeQuestions(25), -3))
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate(nil, 1)

	assert.NotNil(t, page)
	assert.Empty(t, page)
}

func TestPaginateFewerThanOnePage(t *testing.T) {
	page := Paginate(makeQuestions(3), 1)

	assert.Len(t, page, 3)
	assert.Empty(t, Paginate(makeQuestions(3), 2))
}
