package services

import (
	"fmt"
	"testing"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test its own in-memory database. The single
// connection matters: every new connection to :memory: would otherwise
// be a fresh empty database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Report{},
		&models.Question{},
		&models.QuestionReply{},
		&models.Review{},
		&models.ReviewReply{},
	))

	return db
}

func newTestUser(t *testing.T, db *gorm.DB, status string, reportCount int) *models.User {
	t.Helper()

	user := &models.User{
		ID:          uuid.New(),
		Email:       fmt.Sprintf("%s@example.edu", uuid.NewString()[:8]),
		Password:    "irrelevant",
		Status:      status,
		ReportCount: reportCount,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func reloadUser(t *testing.T, db *gorm.DB, id uuid.UUID) *models.User {
	t.Helper()

	var user models.User
	require.NoError(t, db.First(&user, "id = ?", id).Error)
	return &user
}
