package repository

import (
	"context"
	"fmt"
	"testing"

	"javaconnect/internal/cache"
	"javaconnect/internal/models"
	"javaconnect/internal/observability"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func setupCacheBackend(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache.SetClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	t.Cleanup(func() { cache.SetClient(nil) })
}

func TestUserRepository_CachedReadKeepsPasswordHash(t *testing.T) {
	setupCacheBackend(t)
	db := newSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{UserName: "alice", Email: "alice@example.com", Password: "$2a$10$somebcrypthash"}
	require.NoError(t, repo.Create(ctx, user))

	first, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$somebcrypthash", first.Password)

	// Second read is served from Redis. The hash must survive the JSON round
	// trip even though the wire model hides the password field.
	second, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$somebcrypthash", second.Password)
}

func TestUserRepository_UpdateAfterCachedReadKeepsPasswordColumn(t *testing.T) {
	setupCacheBackend(t)
	db := newSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{UserName: "bob", Email: "bob@example.com", Password: "$2a$10$somebcrypthash"}
	require.NoError(t, repo.Create(ctx, user))

	// Warm the cache, read through it, then persist a profile change based on
	// the cached copy. Save writes every column, so the cached copy must still
	// carry the hash or the password column gets wiped.
	_, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	cached, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)

	cached.Email = "bob@new.example.com"
	require.NoError(t, repo.Update(ctx, cached))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "bob@new.example.com", stored.Email)
	assert.Equal(t, "$2a$10$somebcrypthash", stored.Password)
}

func TestRepositories_RecordQueryLatency(t *testing.T) {
	db := newSQLiteDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByUserName(context.Background(), "nobody")
	require.NoError(t, err)

	series := testutil.CollectAndCount(observability.DatabaseQueryLatency,
		"javaconnect_database_query_latency_seconds")
	assert.Greater(t, series, 0)
}
