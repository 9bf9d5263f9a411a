package model

import "time"

// FortuneTemplate is a reusable fortune text. Templates with no owning user
// are system templates: visible to everyone, immutable by end users.
type FortuneTemplate struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id,omitempty"` // nil means system-owned
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body"`
	Category  string    `json:"category,omitempty"`
	Tone      string    `json:"tone,omitempty"`
	IsSystem  bool      `json:"is_system"`
	IsActive  bool      `json:"is_active"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// OwnedBy reports whether the template belongs to the given user.
// System templates have no owner and belong to nobody.
func (t *FortuneTemplate) OwnedBy(userID string) bool {
	return t.UserID != nil && *t.UserID == userID && userID != ""
}

// CreateTemplateRequest represents a request to create a fortune template
type CreateTemplateRequest struct {
	Title    string `json:"title,omitempty"`
	Body     string `json:"body"`
	Category string `json:"category,omitempty"`
	Tone     string `json:"tone,omitempty"`
}

// UpdateTemplateRequest represents a partial template update.
// At least one field must be set.
type UpdateTemplateRequest struct {
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	Category *string `json:"category,omitempty"`
	Tone     *string `json:"tone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Empty reports whether no updatable field was provided.
func (r *UpdateTemplateRequest) Empty() bool {
	return r.Title == nil && r.Body == nil && r.Category == nil &&
		r.Tone == nil && r.IsActive == nil
}

// ListTemplatesRequest holds the listing flags and filters
type ListTemplatesRequest struct {
	Category        string `json:"category,omitempty"`
	Tone            string `json:"tone,omitempty"`
	IncludeInactive bool   `json:"include_inactive"`
	IncludeSystem   bool   `json:"include_system"`
	IncludeMine     bool   `json:"include_mine"`
}

// TemplateList is the listing result: matching templates and their count
type TemplateList struct {
	Items []*FortuneTemplate `json:"items"`
	Count int                `json:"count"`
}
