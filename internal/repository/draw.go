package repository

import (
	"context"

	"github.com/srkarthi1982/fortune-teller/internal/database"
	"github.com/srkarthi1982/fortune-teller/internal/model"
)

// DrawRepository handles fortune draw data access
type DrawRepository struct {
	db database.Database
}

// NewDrawRepository creates a new draw repository
func NewDrawRepository(db database.Database) *DrawRepository {
	return &DrawRepository{db: db}
}

// Create persists a new draw and returns the stored record
func (r *DrawRepository) Create(ctx context.Context, d *model.FortuneDraw) (*model.FortuneDraw, error) {
	query := `
		CREATE fortune_draw CONTENT {
			session_id: $session_id,
			fortune_template_id: $fortune_template_id,
			position_index: $position_index,
			interpreted_text: $interpreted_text,
			created_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"session_id":          d.SessionID,
		"fortune_template_id": d.FortuneTemplateID,
		"position_index":      d.PositionIndex,
		"interpreted_text":    d.InterpretedText,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return decodeFirst[model.FortuneDraw](result)
}

// GetBySession retrieves all draws belonging to a session, oldest first so
// spread order is preserved.
func (r *DrawRepository) GetBySession(ctx context.Context, sessionID string) ([]*model.FortuneDraw, error) {
	query := `
		SELECT * FROM fortune_draw
		WHERE session_id = $session_id
		ORDER BY created_on ASC
	`
	vars := map[string]interface{}{"session_id": sessionID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return decodeRows[model.FortuneDraw](result)
}
