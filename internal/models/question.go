package models

// Question is a single trivia question. Category is a loose reference to a
// Category ID, deliberately without a foreign-key constraint.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Question   string `gorm:"type:text;not null" json:"question"`
	Answer     string `gorm:"type:text;not null" json:"answer"`
	Category   int    `gorm:"index" json:"category"`
	Difficulty int    `json:"difficulty"`
}
