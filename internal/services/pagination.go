package services

import "github.com/andrewthebest/trivia-api/internal/models"

// QuestionsPerPage is the fixed page size for question listings.
const QuestionsPerPage = 10

// Paginate returns the 1-based page slice of questions. A page before the
// first or past the last comes back empty.
func Paginate(questions []models.Question, page int) []models.Question {
	if page < 1 {
		return []models.Question{}
	}

	start := (page - 1) * QuestionsPerPage
	if start >= len(questions) {
		return []models.Question{}
	}

	end := start + QuestionsPerPage
	if end > len(questions) {
		end = len(questions)
	}
	return questions[start:end]
}
