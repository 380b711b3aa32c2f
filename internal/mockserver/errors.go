package mockserver

import (
	"encoding/json"
	"net/http"
)

// apiError is the Telegram-style error envelope a handler returns instead
// of a success result. It carries its own HTTP status so the top-level
// wrapper can render it without inspecting the message.
type apiError struct {
	status      int
	description string
}

func badRequest(description string) *apiError {
	return &apiError{status: http.StatusBadRequest, description: description}
}

func internalError(description string) *apiError {
	return &apiError{status: http.StatusInternalServerError, description: description}
}

func (e *apiError) Error() string { return e.description }

type successEnvelope struct {
	OK     bool `json:"ok"`
	Result any  `json:"result"`
}

type errorEnvelope struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

func writeResult(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(successEnvelope{OK: true, Result: result})
}

func writeError(w http.ResponseWriter, err *apiError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{OK: false, Description: err.description})
}
