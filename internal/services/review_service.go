package services

import (
	"errors"
	"fmt"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewService handles exchange reviews and review replies.
type ReviewService struct {
	db  *gorm.DB
	qna *QnaService
}

func NewReviewService(db *gorm.DB, qna *QnaService) *ReviewService {
	return &ReviewService{db: db, qna: qna}
}

func (s *ReviewService) CreateReview(authorID uuid.UUID, university, title, body string, rating int) (*models.Review, error) {
	if university == "" {
		return nil, fmt.Errorf("%w: university is required", ErrValidation)
	}
	if len(title) < 5 {
		return nil, fmt.Errorf("%w: review title must be at least 5 characters", ErrValidation)
	}
	if len(body) < 10 {
		return nil, fmt.Errorf("%w: review body must be at least 10 characters", ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if err := s.qna.ensureCanPost(authorID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:         uuid.New(),
		AuthorID:   authorID,
		University: university,
		Title:      title,
		Body:       body,
		Rating:     rating,
	}
	if err := s.db.Create(review).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

func (s *ReviewService) CreateReply(reviewID, authorID uuid.UUID, body string) (*models.ReviewReply, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("%w: reply body must be at least 2 characters", ErrValidation)
	}
	if err := s.qna.ensureCanPost(authorID); err != nil {
		return nil, err
	}

	var review models.Review
	if err := s.db.First(&review, "id = ?", reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: review %s", ErrValidation, reviewID)
		}
		return nil, fmt.Errorf("failed to look up review %s: %w", reviewID, err)
	}

	reply := &models.ReviewReply{
		ID:       uuid.New(),
		ReviewID: reviewID,
		AuthorID: authorID,
		Body:     body,
	}
	if err := s.db.Create(reply).Error; err != nil {
		return nil, fmt.Errorf("failed to create review reply: %w", err)
	}
	return reply, nil
}

func (s *ReviewService) ListReviews(university string, page, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	offset := (page - 1) * limit

	query := s.db.Model(&models.Review{})
	if university != "" {
		query = query.Where("university = ?", university)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	return reviews, total, err
}

func (s *ReviewService) GetReview(id uuid.UUID) (*models.Review, []models.ReviewReply, error) {
	var review models.Review
	if err := s.db.First(&review, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}

	var replies []models.ReviewReply
	if err := s.db.Where("review_id = ?", id).Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, nil, err
	}
	return &review, replies, nil
}
