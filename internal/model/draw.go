package model

import "time"

// FortuneDraw is one fortune pulled within a session. A draw may reference a
// template or carry a free-form interpretation without one.
type FortuneDraw struct {
	ID                string    `json:"id"`
	SessionID         string    `json:"session_id"`
	FortuneTemplateID *string   `json:"fortune_template_id,omitempty"`
	PositionIndex     *int      `json:"position_index,omitempty"` // ordinal slot within a spread
	InterpretedText   *string   `json:"interpreted_text,omitempty"`
	CreatedOn         time.Time `json:"created_on"`
}

// CreateDrawRequest represents a request to add a draw to a session
type CreateDrawRequest struct {
	FortuneTemplateID *string `json:"fortune_template_id,omitempty"`
	PositionIndex     *int    `json:"position_index,omitempty"`
	InterpretedText   *string `json:"interpreted_text,omitempty"`
}
