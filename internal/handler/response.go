package handler

import (
	"encoding/json"
	"net/http"

	"github.com/srkarthi1982/fortune-teller/internal/model"
)

// DataResponse wraps a successful response
type DataResponse struct {
	Data interface{} `json:"data"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, DataResponse{Data: data})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	WriteJSON(w, err.Status, err)
}

// WriteNoContent writes a 204 No Content response
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// DecodeJSON decodes a JSON request body into the given struct
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
