package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse is the JSON body of every error produced by the development
// server, shaped after the inventory service's {"detail": "..."} errors.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON serializes data to JSON and writes it with statusCode and a JSON
// content type. When marshaling fails it responds with 500 instead.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes an [ErrorResponse] with the given status.
func WriteError(w http.ResponseWriter, detail string, statusCode int) {
	_, _ = WriteJSON(w, ErrorResponse{Detail: detail}, statusCode)
}
