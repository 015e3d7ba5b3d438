package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User status values. Inactive accounts are awaiting university email
// verification; banned accounts keep their data but lose posting rights.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBanned   = "banned"
)

func ValidUserStatus(s string) bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusBanned:
		return true
	}
	return false
}

// User is the account record and the subject of sanctions.
//
// ReportCount only ever grows; the sole way down is an explicit admin
// reset. BanEndDate is set when a ban has a known expiry — a nil end
// date on a banned user means an indefinite, admin-issued ban that the
// reconciliation job never lifts.
type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	Nickname         string         `gorm:"size:50" json:"nickname"`
	University       string         `gorm:"size:100" json:"university"`
	Role             string         `gorm:"size:20;default:'user'" json:"role"`
	Status           string         `gorm:"size:20;not null;default:'active';index" json:"status"`
	ReportCount      int            `gorm:"not null;default:0" json:"report_count"`
	BanEndDate       *time.Time     `gorm:"index" json:"ban_end_date,omitempty"`
	LastReportReason string         `gorm:"size:1000" json:"-"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
