package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/srkarthi1982/fortune-teller/internal/middleware"
	"github.com/srkarthi1982/fortune-teller/internal/model"
	"github.com/srkarthi1982/fortune-teller/internal/service"
)

// SessionHandler handles fortune session and draw endpoints
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// Create handles POST /v1/sessions - open a question-asking session
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateSessionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	session, err := h.sessionService.CreateSession(r.Context(), userID, &req)
	if err != nil {
		h.handleSessionError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, session)
}

// List handles GET /v1/sessions - list the caller's sessions, paginated
func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	page := intParam(r.URL.Query().Get("page"), 1)
	pageSize := intParam(r.URL.Query().Get("page_size"), model.DefaultSessionPageSize)

	sessions, err := h.sessionService.ListMySessions(r.Context(), userID, page, pageSize)
	if err != nil {
		h.handleSessionError(w, err)
		return
	}

	WriteData(w, http.StatusOK, sessions)
}

// Get handles GET /v1/sessions/{sessionId} - session with all of its draws
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	result, err := h.sessionService.GetSessionWithDraws(r.Context(), userID, sessionID)
	if err != nil {
		h.handleSessionError(w, err)
		return
	}

	WriteData(w, http.StatusOK, result)
}

// AddDraw handles POST /v1/sessions/{sessionId}/draws - record a draw
func (h *SessionHandler) AddDraw(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	sessionID := r.PathValue("sessionId")
	if sessionID == "" {
		WriteError(w, model.NewBadRequestError("session ID required"))
		return
	}

	var req model.CreateDrawRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	draw, err := h.sessionService.AddDraw(r.Context(), userID, sessionID, &req)
	if err != nil {
		h.handleSessionError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, draw)
}

func (h *SessionHandler) handleSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		WriteError(w, model.NewNotFoundError("fortune session"))
	case errors.Is(err, service.ErrNotSessionOwner):
		WriteError(w, model.NewForbiddenError("you do not own this session"))
	case errors.Is(err, service.ErrTemplateNotFound):
		WriteError(w, model.NewNotFoundError("fortune template"))
	case errors.Is(err, service.ErrTemplateNotVisible):
		WriteError(w, model.NewForbiddenError("template is not visible to you"))
	case errors.Is(err, service.ErrTemplateInactive):
		WriteError(w, model.NewBadRequestError("template is archived"))
	case errors.Is(err, service.ErrInvalidPositionIndex):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "position_index", Message: "position index must be a positive integer"},
		}))
	default:
		WriteError(w, model.NewInternalError("session operation failed"))
	}
}

// intParam parses a positive integer query param, falling back to def
func intParam(value string, def int) int {
	if value == "" {
		return def
	}
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return n
	}
	return def
}
