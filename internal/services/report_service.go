package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateReport = errors.New("you have already reported this user recently")
	ErrValidation      = errors.New("validation failed")
)

const (
	minReportTitleLen  = 5
	minReportDetailLen = 10
)

// ReportService is the append-only report ledger. It validates and
// stores reports and enforces the per-pair cooldown; it never touches
// the reported user's counters — that is the sanction engine's job.
type ReportService struct {
	db       *gorm.DB
	cooldown time.Duration
	now      func() time.Time
}

func NewReportService(db *gorm.DB, cooldown time.Duration) *ReportService {
	return &ReportService{
		db:       db,
		cooldown: cooldown,
		now:      time.Now,
	}
}

// FileReport validates and persists one report. Nothing is written when
// any check fails. A reporter may report themselves; the product has
// never forbidden it.
func (s *ReportService) FileReport(reportedID, reporterID uuid.UUID, reason, category, title, detail string) (*models.Report, error) {
	if !models.ValidReportReason(reason) {
		return nil, fmt.Errorf("%w: unknown report reason %q", ErrValidation, reason)
	}
	if !models.ValidReportCategory(category) {
		return nil, fmt.Errorf("%w: unknown report category %q", ErrValidation, category)
	}
	if len(title) < minReportTitleLen {
		return nil, fmt.Errorf("%w: title must be at least %d characters", ErrValidation, minReportTitleLen)
	}
	if len(detail) < minReportDetailLen {
		return nil, fmt.Errorf("%w: detailed reason must be at least %d characters", ErrValidation, minReportDetailLen)
	}

	for _, id := range []uuid.UUID{reportedID, reporterID} {
		var user models.User
		if err := s.db.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrUserNotFound, id)
			}
			return nil, fmt.Errorf("failed to look up user %s: %w", id, err)
		}
	}

	var last models.Report
	err := s.db.Where("reporter_id = ? AND reported_id = ?", reporterID, reportedID).
		Order("created_at DESC").
		First(&last).Error
	switch {
	case err == nil:
		if s.now().Sub(last.CreatedAt) < s.cooldown {
			return nil, ErrDuplicateReport
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("failed to check previous reports: %w", err)
	}

	report := models.Report{
		ID:             uuid.New(),
		ReporterID:     reporterID,
		ReportedID:     reportedID,
		Reason:         reason,
		Category:       category,
		Title:          title,
		DetailedReason: detail,
		CreatedAt:      s.now(),
	}
	if err := s.db.Create(&report).Error; err != nil {
		return nil, fmt.Errorf("failed to create report: %w", err)
	}
	return &report, nil
}

// ListReports pages through the ledger, newest first.
func (s *ReportService) ListReports(limit, offset int) ([]models.Report, int64, error) {
	var reports []models.Report
	var total int64

	if err := s.db.Model(&models.Report{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}
