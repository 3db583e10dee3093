// Package respond holds the JSON response envelope shared by all
// handler packages.
package respond

import (
	"encoding/json"
	"net/http"
)

// Machine-readable error codes surfaced to clients.
const (
	CodeValidation        = "validation_error"
	CodeNotFound          = "not_found"
	CodeConflict          = "conflict"
	CodeInsufficientStock = "insufficient_stock"
	CodeInternal          = "internal_error"
)

type errorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, errorPayload{Code: code, Message: message})
}

// Internal reports a persistence or other unexpected failure without
// leaking driver detail to the client.
func Internal(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, CodeInternal, message)
}
