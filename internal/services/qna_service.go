package services

import (
	"errors"
	"fmt"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAuthorBanned = errors.New("banned users cannot post")

// QnaService handles questions and question replies.
type QnaService struct {
	db *gorm.DB
}

func NewQnaService(db *gorm.DB) *QnaService {
	return &QnaService{db: db}
}

func (s *QnaService) CreateQuestion(authorID uuid.UUID, title, body string) (*models.Question, error) {
	if len(title) < 5 {
		return nil, fmt.Errorf("%w: question title must be at least 5 characters", ErrValidation)
	}
	if len(body) < 10 {
		return nil, fmt.Errorf("%w: question body must be at least 10 characters", ErrValidation)
	}
	if err := s.ensureCanPost(authorID); err != nil {
		return nil, err
	}

	question := &models.Question{
		ID:       uuid.New(),
		AuthorID: authorID,
		Title:    title,
		Body:     body,
	}
	if err := s.db.Create(question).Error; err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	return question, nil
}

func (s *QnaService) CreateReply(questionID, authorID uuid.UUID, body string) (*models.QuestionReply, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("%w: reply body must be at least 2 characters", ErrValidation)
	}
	if err := s.ensureCanPost(authorID); err != nil {
		return nil, err
	}

	var question models.Question
	if err := s.db.First(&question, "id = ?", questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %s", ErrValidation, questionID)
		}
		return nil, fmt.Errorf("failed to look up question %s: %w", questionID, err)
	}

	reply := &models.QuestionReply{
		ID:         uuid.New(),
		QuestionID: questionID,
		AuthorID:   authorID,
		Body:       body,
	}
	if err := s.db.Create(reply).Error; err != nil {
		return nil, fmt.Errorf("failed to create reply: %w", err)
	}
	return reply, nil
}

func (s *QnaService) ListQuestions(page, limit int) ([]models.Question, int64, error) {
	var questions []models.Question
	var total int64

	offset := (page - 1) * limit

	if err := s.db.Model(&models.Question{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&questions).Error
	return questions, total, err
}

func (s *QnaService) GetQuestion(id uuid.UUID) (*models.Question, []models.QuestionReply, error) {
	var question models.Question
	if err := s.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, nil, err
	}

	var replies []models.QuestionReply
	if err := s.db.Where("question_id = ?", id).Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, nil, err
	}
	return &question, replies, nil
}

func (s *QnaService) ensureCanPost(authorID uuid.UUID) error {
	var author models.User
	if err := s.db.First(&author, "id = ?", authorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrUserNotFound, authorID)
		}
		return fmt.Errorf("failed to look up user %s: %w", authorID, err)
	}
	if author.Status == models.UserStatusBanned {
		return ErrAuthorBanned
	}
	return nil
}
