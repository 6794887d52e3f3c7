package models

import (
	"time"

	"gorm.io/gorm"
)

// Feedback is a comment attached to a specific answer (distinct from the
// answer itself). It also carries the owning question id so the detail view
// can be assembled in one fetch.
type Feedback struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	AnswerID   uint   `gorm:"not null;index" json:"answerId"`
	QuestionID uint   `gorm:"not null;index" json:"questionId"`
	Content    string `gorm:"column:feedback;type:text;not null" json:"feedback"`
	GivenBy    uint   `gorm:"not null;index" json:"givenBy"`
	// GivenByName is not persisted; joined from users at query time.
	GivenByName string         `gorm:"->" json:"givenByName"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
