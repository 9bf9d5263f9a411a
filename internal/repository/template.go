package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/srkarthi1982/fortune-teller/internal/database"
	"github.com/srkarthi1982/fortune-teller/internal/filter"
	"github.com/srkarthi1982/fortune-teller/internal/model"
)

// TemplateRepository handles fortune template data access
type TemplateRepository struct {
	db database.Database
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db database.Database) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// List retrieves templates matching the given predicate. A nil predicate
// selects all templates.
func (r *TemplateRepository) List(ctx context.Context, pred *filter.Predicate) ([]*model.FortuneTemplate, error) {
	query := "SELECT * FROM fortune_template " + pred.WhereClause() + " ORDER BY created_on DESC"

	result, err := r.db.Query(ctx, query, pred.Vars())
	if err != nil {
		return nil, err
	}

	return decodeRows[model.FortuneTemplate](result)
}

// GetByID retrieves a template by ID, or nil if it does not exist
func (r *TemplateRepository) GetByID(ctx context.Context, id string) (*model.FortuneTemplate, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return decodeOne[model.FortuneTemplate](result)
}

// Create persists a new template and returns the stored record
func (r *TemplateRepository) Create(ctx context.Context, t *model.FortuneTemplate) (*model.FortuneTemplate, error) {
	query := `
		CREATE fortune_template CONTENT {
			user_id: $user_id,
			title: $title,
			body: $body,
			category: $category,
			tone: $tone,
			is_system: $is_system,
			is_active: $is_active,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"user_id":   t.UserID,
		"title":     t.Title,
		"body":      t.Body,
		"category":  t.Category,
		"tone":      t.Tone,
		"is_system": t.IsSystem,
		"is_active": t.IsActive,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return decodeFirst[model.FortuneTemplate](result)
}

// templateUpdateFields are the columns a partial update may touch
var templateUpdateFields = []string{"title", "body", "category", "tone", "is_active"}

// Update applies the given field updates to a template and bumps updated_on
func (r *TemplateRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	sets := make([]string, 0, len(updates)+1)
	vars := map[string]interface{}{"id": id}

	for _, field := range templateUpdateFields {
		if v, ok := updates[field]; ok {
			sets = append(sets, field+" = $"+field)
			vars[field] = v
		}
	}
	sets = append(sets, "updated_on = time::now()")

	query := "UPDATE type::record($id) SET " + strings.Join(sets, ", ")

	return r.db.Execute(ctx, query, vars)
}
