package models

import "time"

// FlagTarget identifies which kind of content a flag points at.
type FlagTarget string

const (
	FlagTargetQuestion FlagTarget = "question"
	FlagTargetAnswer   FlagTarget = "answer"
	FlagTargetFeedback FlagTarget = "feedback"
)

// Flag is a moderation report attached to exactly one of
// {question, answer, feedback}. The misspelled JSON names ("flagedRession",
// "flagedOnFeedBackId") are the historical wire contract.
type Flag struct {
	ID                 uint   `gorm:"primaryKey" json:"id"`
	FlagedByID         uint   `gorm:"not null;index" json:"flagedById"`
	FlagedOnQuestionID *uint  `gorm:"index" json:"flagedOnQuestionId,omitempty"`
	FlagedOnAnswerID   *uint  `gorm:"index" json:"flagedOnAnswerId,omitempty"`
	FlagedOnFeedBackID *uint  `gorm:"index" json:"flagedOnFeedBackId,omitempty"`
	FlagedRession      string `gorm:"type:text;not null" json:"flagedRession"`
	CreatedAt          time.Time `json:"created_at"`
}

// Target returns the flag's target type and id. ok is false when no target
// field is set.
func (f *Flag) Target() (target FlagTarget, id uint, ok bool) {
	switch {
	case f.FlagedOnQuestionID != nil:
		return FlagTargetQuestion, *f.FlagedOnQuestionID, true
	case f.FlagedOnAnswerID != nil:
		return FlagTargetAnswer, *f.FlagedOnAnswerID, true
	case f.FlagedOnFeedBackID != nil:
		return FlagTargetFeedback, *f.FlagedOnFeedBackID, true
	}
	return "", 0, false
}

// Validate enforces the tagged-union invariant: exactly one target field set
// and a non-empty reason.
func (f *Flag) Validate() error {
	targets := 0
	if f.FlagedOnQuestionID != nil {
		targets++
	}
	if f.FlagedOnAnswerID != nil {
		targets++
	}
	if f.FlagedOnFeedBackID != nil {
		targets++
	}
	if targets != 1 {
		return NewValidationError("Exactly one flag target must be set")
	}
	if f.FlagedRession == "" {
		return NewValidationError("Flag reason is required")
	}
	return nil
}
