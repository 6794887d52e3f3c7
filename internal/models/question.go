package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Difficulty is the question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Valid reports whether d is one of the accepted difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// SplitTags turns the comma-separated tag string the question form submits
// into a trimmed slice, dropping empty entries.
func SplitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tags = append(tags, p)
		}
	}
	return tags
}

// Question is a forum question. "answerDto" is the historical wire name for
// the nested answers collection; keep it.
type Question struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Difficulty  Difficulty `gorm:"not null;index" json:"difficulty"`
	Tags        []string   `gorm:"serializer:json" json:"tags"`
	UserID      uint       `gorm:"not null;index" json:"userId"`
	// AnswerCount is not persisted; computed at query time.
	AnswerCount int            `gorm:"->" json:"answerCount"`
	Answers     []Answer       `gorm:"foreignKey:QuestionID" json:"answerDto"`
	Feedbacks   []Feedback     `gorm:"foreignKey:QuestionID" json:"feedbacks"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
