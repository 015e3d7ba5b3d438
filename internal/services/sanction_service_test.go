package services

import (
	"testing"
	"time"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSanctionStack(t *testing.T) (*gorm.DB, *SanctionService) {
	t.Helper()

	db := openTestDB(t)
	policy := EscalationPolicy{Threshold: 5, BanWindow: 7 * 24 * time.Hour}
	reports := NewReportService(db, 24*time.Hour)
	svc := NewSanctionService(db, reports, NewContentRegistry(db), policy, 24*time.Hour)
	return db, svc
}

func TestProcessReportBelowThreshold(t *testing.T) {
	db, svc := newSanctionStack(t)
	reporter := newTestUser(t, db, models.UserStatusActive, 0)
	reported := newTestUser(t, db, models.UserStatusActive, 0)
	reason, category, title, detail := validReportArgs()

	outcome, err := svc.ProcessReport(reported.ID, reporter.ID, reason, category, title, detail)
	require.NoError(t, err)

	assert.False(t, outcome.Banned)
	assert.NotEmpty(t, outcome.Message)
	assert.Equal(t, outcome.Report.CreatedAt.Add(24*time.Hour), outcome.NextAllowedReportAt)

	after := reloadUser(t, db, reported.ID)
	assert.Equal(t, 1, after.ReportCount)
	assert.Equal(t, models.UserStatusActive, after.Status)
	assert.Nil(t, after.BanEndDate)
	assert.Equal(t, detail, after.LastReportReason)
}

func TestProcessReportTripsBanAndCascades(t *testing.T) {
	db, svc := newSanctionStack(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	svc.reports.now = svc.now

	reporter := newTestUser(t, db, models.UserStatusActive, 0)
	reported := newTestUser(t, db, models.UserStatusActive, 4)
	seedContentForUser(t, db, reported.ID)

	reason, category, title, detail := validReportArgs()
	outcome, err := svc.ProcessReport(reported.ID, reporter.ID, reason, category, title, detail)
	require.NoError(t, err)
	assert.True(t, outcome.Banned)

	after := reloadUser(t, db, reported.ID)
	assert.Equal(t, 5, after.ReportCount)
	assert.Equal(t, models.UserStatusBanned, after.Status)
	require.NotNil(t, after.BanEndDate)
	assert.WithinDuration(t, now.Add(7*24*time.Hour), after.BanEndDate.UTC(), time.Second)

	assert.EqualValues(t, 5, countBlind(t, db, reported.ID, true), "every item of every kind must be blinded")
}

func TestProcessReportDuplicateLeavesNoPartialState(t *testing.T) {
	db, svc := newSanctionStack(t)
	reporter := newTestUser(t, db, models.UserStatusActive, 0)
	reported := newTestUser(t, db, models.UserStatusActive, 4)
	reason, category, title, detail := validReportArgs()

	_, err := svc.ProcessReport(reported.ID, reporter.ID, reason, category, title, detail)
	require.NoError(t, err)

	_, err = svc.ProcessReport(reported.ID, reporter.ID, reason, category, title, detail)
	require.ErrorIs(t, err, ErrDuplicateReport)

	after := reloadUser(t, db, reported.ID)
	assert.Equal(t, 5, after.ReportCount, "a rejected duplicate must not move the counter")

	var ledger int64
	require.NoError(t, db.Model(&models.Report{}).Count(&ledger).Error)
	assert.EqualValues(t, 1, ledger)
}

func TestProcessReportOverwritesLastReason(t *testing.T) {
	db, svc := newSanctionStack(t)
	reported := newTestUser(t, db, models.UserStatusActive, 0)
	reason, category, title, _ := validReportArgs()

	first := newTestUser(t, db, models.UserStatusActive, 0)
	_, err := svc.ProcessReport(reported.ID, first.ID, reason, category, title, "first justification text")
	require.NoError(t, err)

	second := newTestUser(t, db, models.UserStatusActive, 0)
	_, err = svc.ProcessReport(reported.ID, second.ID, reason, category, title, "second justification text")
	require.NoError(t, err)

	after := reloadUser(t, db, reported.ID)
	assert.Equal(t, "second justification text", after.LastReportReason)
	assert.Equal(t, 2, after.ReportCount)
}

func TestProcessReportValidationPropagates(t *testing.T) {
	db, svc := newSanctionStack(t)
	reporter := newTestUser(t, db, models.UserStatusActive, 0)
	reported := newTestUser(t, db, models.UserStatusActive, 0)

	_, err := svc.ProcessReport(reported.ID, reporter.ID, "bogus", models.ReportCategoryQnA, "Valid title", "Long enough detail text")
	require.ErrorIs(t, err, ErrValidation)

	after := reloadUser(t, db, reported.ID)
	assert.Zero(t, after.ReportCount)
}

func TestUnblindAllContentByUser(t *testing.T) {
	db, svc := newSanctionStack(t)
	user := newTestUser(t, db, models.UserStatusActive, 0)
	seedContentForUser(t, db, user.ID)

	svc.BlindAllContentByUser(user.ID)
	require.EqualValues(t, 5, countBlind(t, db, user.ID, true))

	svc.UnblindAllContentByUser(user.ID)
	assert.EqualValues(t, 0, countBlind(t, db, user.ID, true))
}
