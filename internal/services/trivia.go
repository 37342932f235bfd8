package services

import (
	"errors"
	"math/rand"

	"github.com/andrewthebest/trivia-api/internal/models"

	"gorm.io/gorm"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoCategories     = errors.New("no categories to pick from")
	ErrEmptyQuestion    = errors.New("question and answer text are required")
	ErrEmptyType        = errors.New("category type is required")
	ErrNoSearchResults  = errors.New("no questions match the search term")
)

type TriviaService struct {
	db *gorm.DB
}

func NewTriviaService(db *gorm.DB) *TriviaService {
	return &TriviaService{db: db}
}

func (s *TriviaService) ListCategories() ([]models.Category, error) {
	categories := make([]models.Category, 0)
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *TriviaService) CategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

func (s *TriviaService) CreateCategory(categoryType string) (*models.Category, error) {
	if categoryType == "" {
		return nil, ErrEmptyType
	}

	category := models.Category{Type: categoryType}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *TriviaService) ListQuestions() ([]models.Question, error) {
	questions := make([]models.Question, 0)
	if err := s.db.Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *TriviaService) CountQuestions() (int64, error) {
	var count int64
	if err := s.db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type QuestionInput struct {
	Question   string
	Answer     string
	Difficulty int
	Category   int
}

// CreateQuestion persists a new question. The category reference is not
// checked against stored categories, a dangling id is accepted.
func (s *TriviaService) CreateQuestion(input QuestionInput) (*models.Question, error) {
	if input.Question == "" || input.Answer == "" {
		return nil, ErrEmptyQuestion
	}

	question := models.Question{
		Question:   input.Question,
		Answer:     input.Answer,
		Difficulty: input.Difficulty,
		Category:   input.Category,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion removes the question and returns the remaining total.
func (s *TriviaService) DeleteQuestion(id uint) (int64, error) {
	var question models.Question
	if err := s.db.First(&question, id).Error; err != nil {
		return 0, ErrQuestionNotFound
	}

	if err := s.db.Delete(&question).Error; err != nil {
		return 0, err
	}
	return s.CountQuestions()
}

// SearchQuestions runs a case-insensitive substring match of term against the
// question text. Zero matches is an error, not an empty result.
func (s *TriviaService) SearchQuestions(term string) ([]models.Question, error) {
	matches := make([]models.Question, 0)
	err := s.db.
		Where("LOWER(question) LIKE LOWER(?)", "%"+term+"%").
		Order("id ASC").
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	if len(matches) == 0 {
		return nil, ErrNoSearchResults
	}
	return matches, nil
}

// QuestionsByCategory returns every question in the category together with the
// category row itself. The category must exist.
func (s *TriviaService) QuestionsByCategory(categoryID uint) ([]models.Question, *models.Category, error) {
	category, err := s.CategoryByID(categoryID)
	if err != nil {
		return nil, nil, err
	}

	questions := make([]models.Question, 0)
	err = s.db.
		Where("category = ?", categoryID).
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, nil, err
	}
	return questions, category, nil
}

// NextQuizQuestion picks a random question from the effective category that is
// not in previous. Category id 0 means "pick a random category first". A nil
// question with a nil error signals that the quiz is complete: every question
// in the category has already been served.
func (s *TriviaService) NextQuizQuestion(categoryID int, previous []uint) (*models.Question, error) {
	if categoryID == 0 {
		categories, err := s.ListCategories()
		if err != nil {
			return nil, err
		}
		if len(categories) == 0 {
			return nil, ErrNoCategories
		}
		categoryID = int(categories[rand.Intn(len(categories))].ID)
	}

	if _, err := s.CategoryByID(uint(categoryID)); err != nil {
		return nil, err
	}

	var pool []models.Question
	if err := s.db.Where("category = ?", categoryID).Find(&pool).Error; err != nil {
		return nil, err
	}

	seen := make(map[uint]bool, len(previous))
	for _, id := range previous {
		seen[id] = true
	}

	candidates := make([]models.Question, 0, len(pool))
	for _, q := range pool {
		if !seen[q.ID] {
			candidates = append(candidates, q)
		}
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates[rand.Intn(len(candidates))]
	return &picked, nil
}
