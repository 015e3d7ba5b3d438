package dto

import (
	"time"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
)

type CreateQuestionRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type CreateReplyRequest struct {
	Body string `json:"body"`
}

type CreateReviewRequest struct {
	University string `json:"university"`
	Title      string `json:"title"`
	Body       string `json:"body"`
	Rating     int    `json:"rating"`
}

// QuestionResponse carries the effective body: blinded items show the
// placeholder, never the stored text.
type QuestionResponse struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Blind     bool      `json:"blind"`
	CreatedAt time.Time `json:"created_at"`
}

func NewQuestionResponse(q *models.Question) QuestionResponse {
	return QuestionResponse{
		ID:        q.ID,
		AuthorID:  q.AuthorID,
		Title:     q.Title,
		Body:      q.EffectiveBody(),
		Blind:     q.Blind,
		CreatedAt: q.CreatedAt,
	}
}

type ReplyResponse struct {
	ID        uuid.UUID `json:"id"`
	ParentID  uuid.UUID `json:"parent_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Body      string    `json:"body"`
	Blind     bool      `json:"blind"`
	CreatedAt time.Time `json:"created_at"`
}

func NewQuestionReplyResponse(r *models.QuestionReply) ReplyResponse {
	return ReplyResponse{
		ID:        r.ID,
		ParentID:  r.QuestionID,
		AuthorID:  r.AuthorID,
		Body:      r.EffectiveBody(),
		Blind:     r.Blind,
		CreatedAt: r.CreatedAt,
	}
}

func NewReviewReplyResponse(r *models.ReviewReply) ReplyResponse {
	return ReplyResponse{
		ID:        r.ID,
		ParentID:  r.ReviewID,
		AuthorID:  r.AuthorID,
		Body:      r.EffectiveBody(),
		Blind:     r.Blind,
		CreatedAt: r.CreatedAt,
	}
}

type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	University string    `json:"university"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	Rating     int       `json:"rating"`
	Blind      bool      `json:"blind"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		AuthorID:   r.AuthorID,
		University: r.University,
		Title:      r.Title,
		Body:       r.EffectiveBody(),
		Rating:     r.Rating,
		Blind:      r.Blind,
		CreatedAt:  r.CreatedAt,
	}
}
