package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_GetByUserName_Found(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows([]string{"id", "user_name", "email"}).
		AddRow(1, "alice", "alice@example.com")
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_name = \$1`).
		WithArgs("alice", 1).
		WillReturnRows(rows)

	user, err := repo.GetByUserName(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "alice", user.UserName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByUserName_AbsenceIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE user_name = \$1`).
		WithArgs("nobody", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByUserName(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetByEmail_AbsenceIsNotAnError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("nobody@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
