package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/srkarthi1982/fortune-teller/internal/middleware"
	"github.com/srkarthi1982/fortune-teller/internal/model"
	"github.com/srkarthi1982/fortune-teller/internal/service"
)

// TemplateHandler handles fortune template endpoints
type TemplateHandler struct {
	templateService *service.TemplateService
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templateService *service.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		templateService: templateService,
	}
}

// List handles GET /v1/templates - list visible fortune templates.
// Authentication is optional: unauthenticated callers still see system
// templates.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	q := r.URL.Query()
	req := &model.ListTemplatesRequest{
		Category:        q.Get("category"),
		Tone:            q.Get("tone"),
		IncludeInactive: boolParam(q.Get("include_inactive"), false),
		IncludeSystem:   boolParam(q.Get("include_system"), true),
		IncludeMine:     boolParam(q.Get("include_mine"), true),
	}

	list, err := h.templateService.ListTemplates(r.Context(), userID, req)
	if err != nil {
		h.handleTemplateError(w, err)
		return
	}

	WriteData(w, http.StatusOK, list)
}

// Create handles POST /v1/templates - create a user-owned template
func (h *TemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	var req model.CreateTemplateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	template, err := h.templateService.CreateTemplate(r.Context(), userID, &req)
	if err != nil {
		h.handleTemplateError(w, err)
		return
	}

	WriteData(w, http.StatusCreated, template)
}

// Update handles PATCH /v1/templates/{templateId} - partial update
func (h *TemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	templateID := r.PathValue("templateId")
	if templateID == "" {
		WriteError(w, model.NewBadRequestError("template ID required"))
		return
	}

	var req model.UpdateTemplateRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	template, err := h.templateService.UpdateTemplate(r.Context(), userID, templateID, &req)
	if err != nil {
		h.handleTemplateError(w, err)
		return
	}

	WriteData(w, http.StatusOK, template)
}

// Archive handles POST /v1/templates/{templateId}/archive - soft delete
func (h *TemplateHandler) Archive(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("authentication required"))
		return
	}

	templateID := r.PathValue("templateId")
	if templateID == "" {
		WriteError(w, model.NewBadRequestError("template ID required"))
		return
	}

	if err := h.templateService.ArchiveTemplate(r.Context(), userID, templateID); err != nil {
		h.handleTemplateError(w, err)
		return
	}

	WriteNoContent(w)
}

func (h *TemplateHandler) handleTemplateError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTemplateNotFound):
		WriteError(w, model.NewNotFoundError("fortune template"))
	case errors.Is(err, service.ErrNotTemplateOwner):
		WriteError(w, model.NewForbiddenError("you do not own this template"))
	case errors.Is(err, service.ErrSystemTemplateImmutable):
		WriteError(w, model.NewForbiddenError("system templates cannot be modified"))
	case errors.Is(err, service.ErrTemplateBodyRequired):
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "body", Message: "body is required and must be non-empty"},
		}))
	case errors.Is(err, service.ErrNoFieldsToUpdate):
		WriteError(w, model.NewBadRequestError("at least one field must be provided"))
	default:
		WriteError(w, model.NewInternalError("template operation failed"))
	}
}

// boolParam parses a query flag, falling back to def when absent or invalid
func boolParam(value string, def bool) bool {
	if value == "" {
		return def
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return def
}
