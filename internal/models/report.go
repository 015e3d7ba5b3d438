package models

import (
	"time"

	"github.com/google/uuid"
)

// Report reasons.
const (
	ReportReasonAbusiveLanguage      = "abusive_language"
	ReportReasonInappropriateContent = "inappropriate_content"
	ReportReasonIllegalActivity      = "illegal_activity"
	ReportReasonSpam                 = "spam"
	ReportReasonOther                = "other"
)

// Report categories — which surface of the platform the report concerns.
const (
	ReportCategoryProfile = "profile"
	ReportCategoryChat    = "chat"
	ReportCategoryQnA     = "qna"
	ReportCategoryReview  = "review"
)

func ValidReportReason(s string) bool {
	switch s {
	case ReportReasonAbusiveLanguage, ReportReasonInappropriateContent,
		ReportReasonIllegalActivity, ReportReasonSpam, ReportReasonOther:
		return true
	}
	return false
}

func ValidReportCategory(s string) bool {
	switch s {
	case ReportCategoryProfile, ReportCategoryChat, ReportCategoryQnA, ReportCategoryReview:
		return true
	}
	return false
}

// Report is one row of the append-only report ledger. Rows are never
// updated after insert; there is no UpdatedAt on purpose. The composite
// index backs the per-pair cooldown lookup (latest report for a
// reporter/reported pair).
type Report struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReporterID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_pair_time,priority:1" json:"reporter_id"`
	ReportedID     uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_pair_time,priority:2" json:"reported_id"`
	Reason         string    `gorm:"not null;size:50" json:"reason"`
	Category       string    `gorm:"not null;size:50" json:"category"`
	Title          string    `gorm:"not null;size:255" json:"title"`
	DetailedReason string    `gorm:"not null;size:1000" json:"detailed_reason"`
	CreatedAt      time.Time `gorm:"index:idx_reports_pair_time,priority:3" json:"created_at"`
	Reporter       User      `gorm:"foreignKey:ReporterID" json:"-"`
	Reported       User      `gorm:"foreignKey:ReportedID" json:"-"`
}
