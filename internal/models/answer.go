package models

import (
	"time"

	"gorm.io/gorm"
)

// Answer is a user's answer to a question.
type Answer struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	QuestionID uint   `gorm:"not null;index" json:"questionId"`
	Content    string `gorm:"type:text;not null" json:"content"`
	AnsweredBy uint   `gorm:"not null;index" json:"answeredBy"`
	// AnswerByName is not persisted; joined from users at query time.
	AnswerByName string         `gorm:"->" json:"answerByName"`
	Feedbacks    []Feedback     `gorm:"foreignKey:AnswerID" json:"feedbacks,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
