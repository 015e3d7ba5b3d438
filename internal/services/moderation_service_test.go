package services

import (
	"testing"
	"time"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestSetUserStatusAdminBanWithDays(t *testing.T) {
	db := openTestDB(t)
	svc := NewModerationService(db, NewContentRegistry(db))
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	user := newTestUser(t, db, models.UserStatusActive, 0)
	seedContentForUser(t, db, user.ID)

	require.NoError(t, svc.SetUserStatus(user.ID, models.UserStatusBanned, intPtr(3)))

	after := reloadUser(t, db, user.ID)
	assert.Equal(t, models.UserStatusBanned, after.Status)
	require.NotNil(t, after.BanEndDate)
	assert.WithinDuration(t, now.AddDate(0, 0, 3), after.BanEndDate.UTC(), time.Second)
	assert.EqualValues(t, 5, countBlind(t, db, user.ID, true), "admin ban cascades a blind too")
}

func TestSetUserStatusIndefiniteBan(t *testing.T) {
	db := openTestDB(t)
	svc := NewModerationService(db, NewContentRegistry(db))

	user := newTestUser(t, db, models.UserStatusActive, 0)
	require.NoError(t, svc.SetUserStatus(user.ID, models.UserStatusBanned, nil))

	after := reloadUser(t, db, user.ID)
	assert.Equal(t, models.UserStatusBanned, after.Status)
	assert.Nil(t, after.BanEndDate, "no ban days means an indefinite ban")
}

func TestSetUserStatusActiveUnblindsContent(t *testing.T) {
	db := openTestDB(t)
	registry := NewContentRegistry(db)
	svc := NewModerationService(db, registry)

	user := newTestUser(t, db, models.UserStatusBanned, 5)
	seedContentForUser(t, db, user.ID)
	registry.SetBlindForAuthor(user.ID, true)

	require.NoError(t, svc.SetUserStatus(user.ID, models.UserStatusActive, nil))

	after := reloadUser(t, db, user.ID)
	assert.Equal(t, models.UserStatusActive, after.Status)
	assert.Nil(t, after.BanEndDate)
	assert.EqualValues(t, 0, countBlind(t, db, user.ID, true), "admin reactivation restores content")
}

func TestSetUserStatusInactiveNoCascade(t *testing.T) {
	db := openTestDB(t)
	registry := NewContentRegistry(db)
	svc := NewModerationService(db, registry)

	user := newTestUser(t, db, models.UserStatusActive, 0)
	seedContentForUser(t, db, user.ID)
	registry.SetBlindForAuthor(user.ID, true)

	require.NoError(t, svc.SetUserStatus(user.ID, models.UserStatusInactive, nil))

	assert.EqualValues(t, 5, countBlind(t, db, user.ID, true), "only banned/active transitions cascade")
}

func TestSetUserStatusRejectsBadInput(t *testing.T) {
	db := openTestDB(t)
	svc := NewModerationService(db, NewContentRegistry(db))
	user := newTestUser(t, db, models.UserStatusActive, 0)

	err := svc.SetUserStatus(user.ID, "suspended", nil)
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.SetUserStatus(user.ID, models.UserStatusBanned, intPtr(0))
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.SetUserStatus(user.ID, models.UserStatusBanned, intPtr(-2))
	assert.ErrorIs(t, err, ErrValidation)

	after := reloadUser(t, db, user.ID)
	assert.Equal(t, models.UserStatusActive, after.Status, "rejected requests must not mutate")

	err = svc.SetUserStatus(uuid.New(), models.UserStatusBanned, nil)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestBlindAndUnblindAllUserContent(t *testing.T) {
	db := openTestDB(t)
	svc := NewModerationService(db, NewContentRegistry(db))

	user := newTestUser(t, db, models.UserStatusActive, 0)
	seedContentForUser(t, db, user.ID)

	result, err := svc.BlindAllUserContent(user.ID)
	require.NoError(t, err)
	assert.Zero(t, result.FailedKinds())
	assert.EqualValues(t, 5, countBlind(t, db, user.ID, true))

	// The user's status is an independent dimension.
	assert.Equal(t, models.UserStatusActive, reloadUser(t, db, user.ID).Status)

	_, err = svc.UnblindAllUserContent(user.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, countBlind(t, db, user.ID, true))

	_, err = svc.BlindAllUserContent(uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestResetReportCount(t *testing.T) {
	db := openTestDB(t)
	svc := NewModerationService(db, NewContentRegistry(db))

	user := newTestUser(t, db, models.UserStatusActive, 4)
	require.NoError(t, db.Model(user).Update("last_report_reason", "old justification").Error)

	require.NoError(t, svc.ResetReportCount(user.ID))

	after := reloadUser(t, db, user.ID)
	assert.Zero(t, after.ReportCount)
	assert.Empty(t, after.LastReportReason)

	assert.ErrorIs(t, svc.ResetReportCount(uuid.New()), ErrUserNotFound)
}
