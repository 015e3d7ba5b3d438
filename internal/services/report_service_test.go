package services

import (
	"testing"
	"time"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReportArgs() (reason, category, title, detail string) {
	return models.ReportReasonAbusiveLanguage, models.ReportCategoryQnA,
		"Abusive replies", "This user keeps insulting people in QnA threads."
}

func TestFileReportValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db, 24*time.Hour)
	reporter := newTestUser(t, db, models.UserStatusActive, 0)
	reported := newTestUser(t, db, models.UserStatusActive, 0)

	tests := []struct {
		name                            string
		reason, category, title, detail string
	}{
		{name: "unknown reason", reason: "bogus", category: models.ReportCategoryQnA, title: "Valid title", detail: "Long enough detail text"},
		{name: "unknown category", reason: models.ReportReasonSpam, category: "bogus", title: "Valid title", detail: "Long enough detail text"},
		{name: "short title", reason: models.ReportReasonSpam, category: models.ReportCategoryQnA, title: "abcd", detail: "Long enough detail text"},
		{name: "short detail", reason: models.ReportReasonSpam, category: models.ReportCategoryQnA, title: "Valid title", detail: "too short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FileReport(reported.ID, reporter.ID, tt.reason, tt.category, tt.title, tt.detail)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.Report{}).Count(&count).Error)
	assert.Zero(t, count, "rejected reports must not be persisted")
}

func TestFileReportUnknownUsers(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db, 24*time.Hour)
	reporter := newTestUser(t, db, models.UserStatusActive, 0)
	reason, category, title, detail := validReportArgs()

	missing := uuid.New()

	_, err := svc.FileReport(missing, reporter.ID, reason, category, title, detail)
	require.ErrorIs(t, err, ErrUserNotFound)
	assert.Contains(t, err.Error(), missing.String())

	_, err = svc.FileReport(reporter.ID, missing, reason, category, title, detail)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFileReportCooldown(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db, 24*time.Hour)
	reporter := newTestUser(t, db, models.UserStatusActive, 0)
	reported := newTestUser(t, db, models.UserStatusActive, 0)
	reason, category, title, detail := validReportArgs()

	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return base }

	first, err := svc.FileReport(reported.ID, reporter.ID, reason, category, title, detail)
	require.NoError(t, err)
	assert.Equal(t, base, first.CreatedAt)

	// Same pair an hour later: rejected, nothing written.
	svc.now = func() time.Time { return base.Add(1 * time.Hour) }
	_, err = svc.FileReport(reported.ID, reporter.ID, reason, category, title, detail)
	require.ErrorIs(t, err, ErrDuplicateReport)

	var count int64
	require.NoError(t, db.Model(&models.Report{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	// A different reporter is not throttled.
	other := newTestUser(t, db, models.UserStatusActive, 0)
	_, err = svc.FileReport(reported.ID, other.ID, reason, category, title, detail)
	require.NoError(t, err)

	// The original pair clears once the cooldown elapses.
	svc.now = func() time.Time { return base.Add(24*time.Hour + time.Minute) }
	_, err = svc.FileReport(reported.ID, reporter.ID, reason, category, title, detail)
	assert.NoError(t, err)
}

func TestFileReportSelfReportAllowed(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db, 24*time.Hour)
	user := newTestUser(t, db, models.UserStatusActive, 0)
	reason, category, title, detail := validReportArgs()

	report, err := svc.FileReport(user.ID, user.ID, reason, category, title, detail)
	require.NoError(t, err)
	assert.Equal(t, user.ID, report.ReporterID)
	assert.Equal(t, user.ID, report.ReportedID)
}

func TestListReportsNewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := NewReportService(db, 24*time.Hour)
	reported := newTestUser(t, db, models.UserStatusActive, 0)
	reason, category, title, detail := validReportArgs()

	base := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		reporter := newTestUser(t, db, models.UserStatusActive, 0)
		offset := time.Duration(i) * time.Hour
		svc.now = func() time.Time { return base.Add(offset) }
		_, err := svc.FileReport(reported.ID, reporter.ID, reason, category, title, detail)
		require.NoError(t, err)
	}

	reports, total, err := svc.ListReports(2, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, reports, 2)
	assert.True(t, reports[0].CreatedAt.After(reports[1].CreatedAt))
}
