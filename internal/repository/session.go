package repository

import (
	"context"
	"errors"

	"github.com/srkarthi1982/fortune-teller/internal/database"
	"github.com/srkarthi1982/fortune-teller/internal/model"
)

// SessionRepository handles fortune session data access
type SessionRepository struct {
	db database.Database
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db database.Database) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a new session and returns the stored record
func (r *SessionRepository) Create(ctx context.Context, s *model.FortuneSession) (*model.FortuneSession, error) {
	query := `
		CREATE fortune_session CONTENT {
			user_id: $user_id,
			question: $question,
			spread_type: $spread_type,
			notes: $notes,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"user_id":     s.UserID,
		"question":    s.Question,
		"spread_type": s.SpreadType,
		"notes":       s.Notes,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return decodeFirst[model.FortuneSession](result)
}

// GetByID retrieves a session by ID, or nil if it does not exist
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*model.FortuneSession, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return decodeOne[model.FortuneSession](result)
}

// GetByUser retrieves one page of a user's sessions, newest first
func (r *SessionRepository) GetByUser(ctx context.Context, userID string, limit, offset int) ([]*model.FortuneSession, error) {
	query := `
		SELECT * FROM fortune_session
		WHERE user_id = $user_id
		ORDER BY created_on DESC
		LIMIT $limit START $offset
	`
	vars := map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return decodeRows[model.FortuneSession](result)
}
