package model

import "time"

// FortuneSession is one question-asking episode. Only the owning user may
// read a session or add draws to it. Sessions are append-only.
type FortuneSession struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Question   string    `json:"question,omitempty"`
	SpreadType string    `json:"spread_type,omitempty"` // e.g. "single", "three_card"
	Notes      string    `json:"notes,omitempty"`
	CreatedOn  time.Time `json:"created_on"`
}

// CreateSessionRequest represents a request to open a session.
// All fields are optional.
type CreateSessionRequest struct {
	Question   string `json:"question,omitempty"`
	SpreadType string `json:"spread_type,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// SessionPage is one page of the caller's sessions. Count is the number of
// items in this page, not the total matching count.
type SessionPage struct {
	Items    []*FortuneSession `json:"items"`
	Count    int               `json:"count"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// SessionWithDraws bundles a session with all of its draws
type SessionWithDraws struct {
	Session *FortuneSession `json:"session"`
	Draws   []*FortuneDraw  `json:"draws"`
}

// Pagination bounds for session listings
const (
	DefaultSessionPageSize = 20
	MaxSessionPageSize     = 100
)
