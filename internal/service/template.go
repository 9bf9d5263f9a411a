package service

import (
	"context"
	"strings"

	"github.com/srkarthi1982/fortune-teller/internal/filter"
	"github.com/srkarthi1982/fortune-teller/internal/model"
)

// TemplateRepository defines the interface for template storage
type TemplateRepository interface {
	List(ctx context.Context, pred *filter.Predicate) ([]*model.FortuneTemplate, error)
	GetByID(ctx context.Context, id string) (*model.FortuneTemplate, error)
	Create(ctx context.Context, t *model.FortuneTemplate) (*model.FortuneTemplate, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
}

// TemplateService handles fortune template business logic: visibility rules
// for listings, ownership checks for mutation, and the system-template
// immutability invariant.
type TemplateService struct {
	repo TemplateRepository
}

// TemplateServiceConfig holds configuration for the template service
type TemplateServiceConfig struct {
	Repo TemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(cfg TemplateServiceConfig) *TemplateService {
	return &TemplateService{
		repo: cfg.Repo,
	}
}

// ListTemplates returns templates visible to the caller under the given
// flags. callerID is empty for unauthenticated callers; listing is the one
// operation that does not require authentication (system templates are
// public).
func (s *TemplateService) ListTemplates(ctx context.Context, callerID string, req *model.ListTemplatesRequest) (*model.TemplateList, error) {
	// Nothing can be visible under these flags; skip the store entirely.
	if !req.IncludeSystem && (!req.IncludeMine || callerID == "") {
		return &model.TemplateList{Items: []*model.FortuneTemplate{}, Count: 0}, nil
	}

	var visibility *filter.Predicate
	switch {
	case req.IncludeSystem && req.IncludeMine && callerID != "":
		visibility = filter.Or(
			filter.Eq("is_system", "is_system", true),
			filter.Eq("user_id", "user_id", callerID),
		)
	case req.IncludeSystem:
		visibility = filter.Eq("is_system", "is_system", true)
	default:
		// include_system=false: callerID is guaranteed non-empty here
		visibility = filter.Eq("user_id", "user_id", callerID)
	}

	var active, category, tone *filter.Predicate
	if !req.IncludeInactive {
		active = filter.Eq("is_active", "is_active", true)
	}
	if req.Category != "" {
		category = filter.Eq("category", "category", req.Category)
	}
	if req.Tone != "" {
		tone = filter.Eq("tone", "tone", req.Tone)
	}

	pred := filter.And(visibility, active, category, tone)

	items, err := s.repo.List(ctx, pred)
	if err != nil {
		return nil, err
	}

	return &model.TemplateList{Items: items, Count: len(items)}, nil
}

// CreateTemplate creates a user-owned template. End users can never create
// system templates: is_system is forced false and is_active true regardless
// of input.
func (s *TemplateService) CreateTemplate(ctx context.Context, callerID string, req *model.CreateTemplateRequest) (*model.FortuneTemplate, error) {
	if strings.TrimSpace(req.Body) == "" {
		return nil, ErrTemplateBodyRequired
	}

	template := &model.FortuneTemplate{
		UserID:   &callerID,
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
		Tone:     req.Tone,
		IsSystem: false,
		IsActive: true,
	}

	return s.repo.Create(ctx, template)
}

// UpdateTemplate applies a partial update to a caller-owned template.
// System templates are immutable regardless of caller.
func (s *TemplateService) UpdateTemplate(ctx context.Context, callerID, id string, req *model.UpdateTemplateRequest) (*model.FortuneTemplate, error) {
	if req.Empty() {
		return nil, ErrNoFieldsToUpdate
	}
	if req.Body != nil && strings.TrimSpace(*req.Body) == "" {
		return nil, ErrTemplateBodyRequired
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTemplateNotFound
	}
	if !existing.OwnedBy(callerID) {
		return nil, ErrNotTemplateOwner
	}
	if existing.IsSystem {
		return nil, ErrSystemTemplateImmutable
	}

	updates := make(map[string]interface{})
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Tone != nil {
		updates["tone"] = *req.Tone
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored record, updated_on included.
	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrTemplateNotFound
	}
	return updated, nil
}

// ArchiveTemplate soft-deletes a caller-owned template. The check is
// ownership only: a system template has no owner, so no caller ever passes
// it, which denies archival of system templates without a dedicated rule.
func (s *TemplateService) ArchiveTemplate(ctx context.Context, callerID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTemplateNotFound
	}
	if !existing.OwnedBy(callerID) {
		return ErrNotTemplateOwner
	}

	return s.repo.Update(ctx, id, map[string]interface{}{"is_active": false})
}
