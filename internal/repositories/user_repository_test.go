package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/college/skillbridge/internal/database"
	"github.com/college/skillbridge/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestFindRefreshTokenUnknownReturnsSentinel(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.FindRefreshToken("never-issued")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
}

func TestReplaceRefreshTokenKeepsOneRowPerUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	user := &models.User{Name: "Tok", Email: "tok@college.edu", PasswordHash: "x", Role: models.RoleStudent}
	require.NoError(t, repo.Create(user))

	expiry := time.Now().Add(time.Hour)
	_, err := repo.ReplaceRefreshToken(user.ID, "first-token", expiry)
	require.NoError(t, err)
	_, err = repo.ReplaceRefreshToken(user.ID, "second-token", expiry)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.RefreshToken{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = repo.FindRefreshToken("first-token")
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)

	record, err := repo.FindRefreshToken("second-token")
	require.NoError(t, err)
	assert.Equal(t, user.ID, record.UserID)
}
