package service

import (
	"context"

	"github.com/srkarthi1982/fortune-teller/internal/model"
)

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, s *model.FortuneSession) (*model.FortuneSession, error)
	GetByID(ctx context.Context, id string) (*model.FortuneSession, error)
	GetByUser(ctx context.Context, userID string, limit, offset int) ([]*model.FortuneSession, error)
}

// DrawRepository defines the interface for draw storage
type DrawRepository interface {
	Create(ctx context.Context, d *model.FortuneDraw) (*model.FortuneDraw, error)
	GetBySession(ctx context.Context, sessionID string) ([]*model.FortuneDraw, error)
}

// SessionService handles fortune session and draw business logic. Sessions
// and draws are append-only; only the owning user may read a session or add
// draws to it.
type SessionService struct {
	sessionRepo  SessionRepository
	drawRepo     DrawRepository
	templateRepo TemplateRepository
}

// SessionServiceConfig holds configuration for the session service
type SessionServiceConfig struct {
	SessionRepo  SessionRepository
	DrawRepo     DrawRepository
	TemplateRepo TemplateRepository
}

// NewSessionService creates a new session service
func NewSessionService(cfg SessionServiceConfig) *SessionService {
	return &SessionService{
		sessionRepo:  cfg.SessionRepo,
		drawRepo:     cfg.DrawRepo,
		templateRepo: cfg.TemplateRepo,
	}
}

// CreateSession opens a new question-asking episode for the caller.
// All descriptive fields are optional.
func (s *SessionService) CreateSession(ctx context.Context, callerID string, req *model.CreateSessionRequest) (*model.FortuneSession, error) {
	session := &model.FortuneSession{
		UserID:     callerID,
		Question:   req.Question,
		SpreadType: req.SpreadType,
		Notes:      req.Notes,
	}

	return s.sessionRepo.Create(ctx, session)
}

// ListMySessions returns one page of the caller's sessions. Page is clamped
// to >= 1 and pageSize to [1, MaxSessionPageSize]; zero values take the
// defaults. Count is the number of items in this page, not the total.
func (s *SessionService) ListMySessions(ctx context.Context, callerID string, page, pageSize int) (*model.SessionPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = model.DefaultSessionPageSize
	}
	if pageSize > model.MaxSessionPageSize {
		pageSize = model.MaxSessionPageSize
	}

	offset := (page - 1) * pageSize

	items, err := s.sessionRepo.GetByUser(ctx, callerID, pageSize, offset)
	if err != nil {
		return nil, err
	}

	return &model.SessionPage{
		Items:    items,
		Count:    len(items),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetSessionWithDraws returns a caller-owned session together with all of
// its draws.
func (s *SessionService) GetSessionWithDraws(ctx context.Context, callerID, id string) (*model.SessionWithDraws, error) {
	session, err := s.ownedSession(ctx, callerID, id)
	if err != nil {
		return nil, err
	}

	draws, err := s.drawRepo.GetBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	return &model.SessionWithDraws{Session: session, Draws: draws}, nil
}

// AddDraw records one fortune pulled within a caller-owned session. A
// referenced template must exist, be active, and be either system-owned or
// owned by the caller; draws without a template carry free-form
// interpretation.
func (s *SessionService) AddDraw(ctx context.Context, callerID, sessionID string, req *model.CreateDrawRequest) (*model.FortuneDraw, error) {
	if req.PositionIndex != nil && *req.PositionIndex < 1 {
		return nil, ErrInvalidPositionIndex
	}

	session, err := s.ownedSession(ctx, callerID, sessionID)
	if err != nil {
		return nil, err
	}

	if req.FortuneTemplateID != nil {
		template, err := s.templateRepo.GetByID(ctx, *req.FortuneTemplateID)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, ErrTemplateNotFound
		}
		if !template.IsSystem && !template.OwnedBy(callerID) {
			return nil, ErrTemplateNotVisible
		}
		if !template.IsActive {
			return nil, ErrTemplateInactive
		}
	}

	draw := &model.FortuneDraw{
		SessionID:         session.ID,
		FortuneTemplateID: req.FortuneTemplateID,
		PositionIndex:     req.PositionIndex,
		InterpretedText:   req.InterpretedText,
	}

	return s.drawRepo.Create(ctx, draw)
}

// ownedSession loads a session and enforces ownership
func (s *SessionService) ownedSession(ctx context.Context, callerID, id string) (*model.FortuneSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	if session.UserID != callerID {
		return nil, ErrNotSessionOwner
	}
	return session, nil
}
