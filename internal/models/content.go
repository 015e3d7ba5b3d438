package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlindedBody replaces the stored body of blinded content at read time.
// The original text stays in the row untouched.
const BlindedBody = "This content has been hidden by the moderation team."

// Question is a QnA post about exchange life at a university.
type Question struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Title     string         `gorm:"not null;size:255" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"-"`
	Blind     bool           `gorm:"not null;default:false" json:"blind"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"-"`
}

func (q *Question) BeforeCreate(_ *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// EffectiveBody is the body readers see: the placeholder while blinded,
// the literal text otherwise.
func (q *Question) EffectiveBody() string {
	if q.Blind {
		return BlindedBody
	}
	return q.Body
}

// QuestionReply is an answer under a question.
type QuestionReply struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"question_id"`
	AuthorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Body       string         `gorm:"type:text;not null" json:"-"`
	Blind      bool           `gorm:"not null;default:false" json:"blind"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Author     User           `gorm:"foreignKey:AuthorID" json:"-"`
}

func (r *QuestionReply) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *QuestionReply) EffectiveBody() string {
	if r.Blind {
		return BlindedBody
	}
	return r.Body
}

// Review is a user's writeup of their exchange semester.
type Review struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	AuthorID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	University string         `gorm:"not null;size:100;index" json:"university"`
	Title      string         `gorm:"not null;size:255" json:"title"`
	Body       string         `gorm:"type:text;not null" json:"-"`
	Rating     int            `gorm:"not null" json:"rating"`
	Blind      bool           `gorm:"not null;default:false" json:"blind"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Author     User           `gorm:"foreignKey:AuthorID" json:"-"`
}

func (r *Review) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *Review) EffectiveBody() string {
	if r.Blind {
		return BlindedBody
	}
	return r.Body
}

// ReviewReply is a comment under a review.
type ReviewReply struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ReviewID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"review_id"`
	AuthorID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"author_id"`
	Body      string         `gorm:"type:text;not null" json:"-"`
	Blind     bool           `gorm:"not null;default:false" json:"blind"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"-"`
}

func (r *ReviewReply) BeforeCreate(_ *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *ReviewReply) EffectiveBody() string {
	if r.Blind {
		return BlindedBody
	}
	return r.Body
}
