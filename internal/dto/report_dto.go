package dto

import (
	"time"

	"github.com/google/uuid"
)

type FileReportRequest struct {
	ReportedID     uuid.UUID `json:"reported_id"`
	Reason         string    `json:"reason"`
	Category       string    `json:"category"`
	Title          string    `json:"title"`
	DetailedReason string    `json:"detailed_reason"`
}

// FileReportResponse deliberately says nothing about whether the report
// tripped an escalation.
type FileReportResponse struct {
	Message             string    `json:"message"`
	NextAllowedReportAt time.Time `json:"next_allowed_report_at"`
}
