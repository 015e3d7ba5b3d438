package services

import (
	"log/slog"

	"github.com/campuslink/exchange-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// contentKinds lists every kind of user-generated content a sanction
// must reach. Adding a kind here is all a new content table needs to
// take part in the cascade.
var contentKinds = []struct {
	name  string
	model interface{}
}{
	{"question", &models.Question{}},
	{"question_reply", &models.QuestionReply{}},
	{"review", &models.Review{}},
	{"review_reply", &models.ReviewReply{}},
}

// ContentRegistry applies visibility changes across every content kind.
//
// The cascade is one UPDATE per kind: atomic within a kind, no
// cross-kind transaction. A crash mid-cascade can leave some kinds
// blinded and others not; re-running converges because the predicate
// skips rows already in the target state.
type ContentRegistry struct {
	db *gorm.DB
}

func NewContentRegistry(db *gorm.DB) *ContentRegistry {
	return &ContentRegistry{db: db}
}

// CascadeResult reports what one cascade pass did, per content kind.
type CascadeResult struct {
	Updated map[string]int64
	Failed  map[string]error
}

func (r CascadeResult) FailedKinds() int {
	return len(r.Failed)
}

// SetBlindForAuthor flips the blind flag on every item the user
// authored, one kind at a time. A kind that fails is logged and
// counted, not fatal: the caller's account-level action stands and the
// cascade can be re-run.
func (r *ContentRegistry) SetBlindForAuthor(authorID uuid.UUID, blind bool) CascadeResult {
	result := CascadeResult{
		Updated: make(map[string]int64, len(contentKinds)),
		Failed:  make(map[string]error),
	}

	for _, kind := range contentKinds {
		tx := r.db.Model(kind.model).
			Where("author_id = ? AND blind <> ?", authorID, blind).
			Update("blind", blind)
		if tx.Error != nil {
			slog.Error("content visibility cascade failed for kind",
				"kind", kind.name, "user_id", authorID.String(), "blind", blind, "error", tx.Error)
			result.Failed[kind.name] = tx.Error
			continue
		}
		result.Updated[kind.name] = tx.RowsAffected
	}

	return result
}
