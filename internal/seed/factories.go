// Package seed populates a development database with plausible forum data.
package seed

import (
	"fmt"
	"strings"

	"javaconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var difficulties = []models.Difficulty{
	models.DifficultyEasy,
	models.DifficultyMedium,
	models.DifficultyHard,
}

var javaTopics = []string{
	"collections", "generics", "streams", "concurrency", "jvm",
	"spring", "exceptions", "lambdas", "inheritance", "interfaces",
}

// UserFactory creates a user with a known password ("password123").
func UserFactory(db *gorm.DB) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		UserName: strings.ToLower(gofakeit.Username()),
		Email:    gofakeit.Email(),
		Password: string(hashed),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// QuestionFactory creates a question owned by the given user.
func QuestionFactory(db *gorm.DB, userID uint) (*models.Question, error) {
	topic := gofakeit.RandomString(javaTopics)
	question := &models.Question{
		Title:       fmt.Sprintf("How do I use %s in Java %d?", topic, gofakeit.Number(8, 21)),
		Description: gofakeit.Paragraph(2, 4, 12, " "),
		Difficulty:  difficulties[gofakeit.Number(0, len(difficulties)-1)],
		Tags:        []string{"java", topic},
		UserID:      userID,
	}
	if err := db.Create(question).Error; err != nil {
		return nil, err
	}
	return question, nil
}

// AnswerFactory creates an answer on the given question.
func AnswerFactory(db *gorm.DB, questionID, userID uint) (*models.Answer, error) {
	answer := &models.Answer{
		QuestionID: questionID,
		Content:    gofakeit.Paragraph(1, 3, 10, " "),
		AnsweredBy: userID,
	}
	if err := db.Create(answer).Error; err != nil {
		return nil, err
	}
	return answer, nil
}

// FeedbackFactory creates feedback on the given answer.
func FeedbackFactory(db *gorm.DB, answer *models.Answer, userID uint) (*models.Feedback, error) {
	feedback := &models.Feedback{
		AnswerID:   answer.ID,
		QuestionID: answer.QuestionID,
		Content:    gofakeit.Sentence(10),
		GivenBy:    userID,
	}
	if err := db.Create(feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

// Run populates the database with users, questions, answers and feedback.
func Run(db *gorm.DB, userCount, questionsPerUser int) error {
	users := make([]*models.User, 0, userCount)
	for i := 0; i < userCount; i++ {
		user, err := UserFactory(db)
		if err != nil {
			return fmt.Errorf("seeding user: %w", err)
		}
		users = append(users, user)
	}

	for _, user := range users {
		for i := 0; i < questionsPerUser; i++ {
			question, err := QuestionFactory(db, user.ID)
			if err != nil {
				return fmt.Errorf("seeding question: %w", err)
			}

			for j := 0; j < gofakeit.Number(0, 3); j++ {
				answerer := users[gofakeit.Number(0, len(users)-1)]
				answer, err := AnswerFactory(db, question.ID, answerer.ID)
				if err != nil {
					return fmt.Errorf("seeding answer: %w", err)
				}
				if gofakeit.Bool() {
					reviewer := users[gofakeit.Number(0, len(users)-1)]
					if _, err := FeedbackFactory(db, answer, reviewer.ID); err != nil {
						return fmt.Errorf("seeding feedback: %w", err)
					}
				}
			}
		}
	}
	return nil
}
