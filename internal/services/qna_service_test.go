package services

import (
	"testing"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateQuestionValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewQnaService(db)
	author := newTestUser(t, db, models.UserStatusActive, 0)

	_, err := svc.CreateQuestion(author.ID, "Hi", "This body is long enough.")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateQuestion(author.ID, "Valid title", "short")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateQuestion(uuid.New(), "Valid title", "This body is long enough.")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestBannedUserCannotPost(t *testing.T) {
	db := openTestDB(t)
	qna := NewQnaService(db)
	reviews := NewReviewService(db, qna)
	banned := newTestUser(t, db, models.UserStatusBanned, 5)

	_, err := qna.CreateQuestion(banned.ID, "Valid title", "This body is long enough.")
	assert.ErrorIs(t, err, ErrAuthorBanned)

	_, err = reviews.CreateReview(banned.ID, "Uppsala", "Valid title", "This body is long enough.", 4)
	assert.ErrorIs(t, err, ErrAuthorBanned)
}

func TestBlindProjectionKeepsOriginalBody(t *testing.T) {
	db := openTestDB(t)
	qna := NewQnaService(db)
	registry := NewContentRegistry(db)
	author := newTestUser(t, db, models.UserStatusActive, 0)

	question, err := qna.CreateQuestion(author.ID, "Housing near campus?", "Any tips for finding a room close by?")
	require.NoError(t, err)
	assert.Equal(t, question.Body, question.EffectiveBody())

	registry.SetBlindForAuthor(author.ID, true)

	got, _, err := qna.GetQuestion(question.ID)
	require.NoError(t, err)
	assert.True(t, got.Blind)
	assert.Equal(t, models.BlindedBody, got.EffectiveBody())
	assert.Equal(t, "Any tips for finding a room close by?", got.Body, "the stored text survives blinding")
}

func TestCreateReviewAndReplies(t *testing.T) {
	db := openTestDB(t)
	qna := NewQnaService(db)
	reviews := NewReviewService(db, qna)
	author := newTestUser(t, db, models.UserStatusActive, 0)

	_, err := reviews.CreateReview(author.ID, "", "Valid title", "This body is long enough.", 4)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = reviews.CreateReview(author.ID, "Uppsala", "Valid title", "This body is long enough.", 6)
	assert.ErrorIs(t, err, ErrValidation)

	review, err := reviews.CreateReview(author.ID, "Uppsala", "Great semester", "Would absolutely go again, twice.", 5)
	require.NoError(t, err)

	reply, err := reviews.CreateReply(review.ID, author.ID, "Glad it helped!")
	require.NoError(t, err)
	assert.Equal(t, review.ID, reply.ReviewID)

	_, err = reviews.CreateReply(uuid.New(), author.ID, "orphan reply")
	assert.ErrorIs(t, err, ErrValidation)
}
