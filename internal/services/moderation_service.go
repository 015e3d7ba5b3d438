package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModerationService is the administrator surface: direct status
// changes, direct blind/unblind, and the explicit report-counter reset.
// It is independent of the report pipeline but shares its cascade.
type ModerationService struct {
	db       *gorm.DB
	registry *ContentRegistry
	now      func() time.Time
}

func NewModerationService(db *gorm.DB, registry *ContentRegistry) *ModerationService {
	return &ModerationService{
		db:       db,
		registry: registry,
		now:      time.Now,
	}
}

// SetUserStatus changes a user's status. Banning with banDays sets an
// expiry the reconciliation job will honor; banning without one is
// indefinite. Banning cascades a blind over the user's content;
// restoring to active cascades an unblind. Any other transition leaves
// content alone.
func (s *ModerationService) SetUserStatus(userID uuid.UUID, status string, banDays *int) error {
	if !models.ValidUserStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if banDays != nil && *banDays <= 0 {
		return fmt.Errorf("%w: ban end date would not be in the future", ErrValidation)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return fmt.Errorf("failed to look up user %s: %w", userID, err)
	}

	updates := map[string]interface{}{
		"status":       status,
		"ban_end_date": nil,
	}
	if status == models.UserStatusBanned && banDays != nil {
		updates["ban_end_date"] = s.now().AddDate(0, 0, *banDays)
	}

	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update status of user %s: %w", userID, err)
	}

	switch status {
	case models.UserStatusBanned:
		s.registry.SetBlindForAuthor(userID, true)
	case models.UserStatusActive:
		s.registry.SetBlindForAuthor(userID, false)
	}
	return nil
}

// BlindAllUserContent hides the user's content without touching their
// account status.
func (s *ModerationService) BlindAllUserContent(userID uuid.UUID) (CascadeResult, error) {
	if err := s.ensureUserExists(userID); err != nil {
		return CascadeResult{}, err
	}
	return s.registry.SetBlindForAuthor(userID, true), nil
}

// UnblindAllUserContent restores the user's content.
func (s *ModerationService) UnblindAllUserContent(userID uuid.UUID) (CascadeResult, error) {
	if err := s.ensureUserExists(userID); err != nil {
		return CascadeResult{}, err
	}
	return s.registry.SetBlindForAuthor(userID, false), nil
}

// ResetReportCount is the only path that lowers a report counter.
func (s *ModerationService) ResetReportCount(userID uuid.UUID) error {
	if err := s.ensureUserExists(userID); err != nil {
		return err
	}
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"report_count":       0,
			"last_report_reason": "",
		}).Error
}

func (s *ModerationService) ensureUserExists(userID uuid.UUID) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrUserNotFound, userID)
		}
		return fmt.Errorf("failed to look up user %s: %w", userID, err)
	}
	return nil
}
