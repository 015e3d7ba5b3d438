package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SanctionService turns filed reports into account sanctions and drives
// the content-visibility cascade.
type SanctionService struct {
	db       *gorm.DB
	reports  *ReportService
	registry *ContentRegistry
	policy   EscalationPolicy
	cooldown time.Duration
	now      func() time.Time

	// Per-user locks serialize the increment-then-escalate window so
	// two concurrent reports against the same target cannot lose an
	// update or double-evaluate the threshold.
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

// SanctionOutcome is what the reporter gets back. It never reveals
// whether the report tripped an escalation.
type SanctionOutcome struct {
	Report              *models.Report
	Banned              bool
	Message             string
	NextAllowedReportAt time.Time
}

func NewSanctionService(db *gorm.DB, reports *ReportService, registry *ContentRegistry, policy EscalationPolicy, cooldown time.Duration) *SanctionService {
	return &SanctionService{
		db:       db,
		reports:  reports,
		registry: registry,
		policy:   policy,
		cooldown: cooldown,
		now:      time.Now,
		locks:    make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *SanctionService) lockUser(id uuid.UUID) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// ProcessReport files a report against a user and applies the
// escalation policy to the updated report count. Ledger failures
// (validation, cooldown, unknown users) propagate unchanged and leave
// no partial state.
func (s *SanctionService) ProcessReport(reportedID, reporterID uuid.UUID, reason, category, title, detail string) (*SanctionOutcome, error) {
	unlock := s.lockUser(reportedID)
	defer unlock()

	report, err := s.reports.FileReport(reportedID, reporterID, reason, category, title, detail)
	if err != nil {
		return nil, err
	}

	// Counter bump happens in the store, not read-modify-write here.
	res := s.db.Model(&models.User{}).
		Where("id = ?", reportedID).
		Updates(map[string]interface{}{
			"report_count":       gorm.Expr("report_count + ?", 1),
			"last_report_reason": detail,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("failed to record report against user %s: %w", reportedID, res.Error)
	}

	var reported models.User
	if err := s.db.First(&reported, "id = ?", reportedID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload reported user %s: %w", reportedID, err)
	}

	outcome := &SanctionOutcome{
		Report:              report,
		Message:             "Report received. Our moderation team will review it.",
		NextAllowedReportAt: report.CreatedAt.Add(s.cooldown),
	}

	decision := s.policy.Decide(reported.ReportCount)
	if !decision.Ban {
		return outcome, nil
	}

	banEnd := s.now().Add(decision.Window)
	if err := s.db.Model(&reported).Updates(map[string]interface{}{
		"status":       models.UserStatusBanned,
		"ban_end_date": banEnd,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to ban user %s: %w", reportedID, err)
	}

	slog.Info("user banned by escalation",
		"user_id", reportedID.String(),
		"report_count", reported.ReportCount,
		"ban_end_date", banEnd)

	// Content blinding is best-effort: the ban stands even if a kind
	// fails, and the cascade is safe to re-run.
	if cascade := s.BlindAllContentByUser(reportedID); cascade.FailedKinds() > 0 {
		slog.Error("escalation cascade incomplete",
			"user_id", reportedID.String(), "failed_kinds", cascade.FailedKinds())
	}

	outcome.Banned = true
	return outcome, nil
}

// BlindAllContentByUser hides every item the user authored across all
// content kinds. Idempotent.
func (s *SanctionService) BlindAllContentByUser(userID uuid.UUID) CascadeResult {
	return s.registry.SetBlindForAuthor(userID, true)
}

// UnblindAllContentByUser restores every item the user authored.
// Only moderator actions call this; ban expiry never does.
func (s *SanctionService) UnblindAllContentByUser(userID uuid.UUID) CascadeResult {
	return s.registry.SetBlindForAuthor(userID, false)
}
