// Package api holds the response helpers shared by the HTTP handler
// packages.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[API] failed to write response: %v", err)
	}
}

// WriteMessage writes a {"message": ...} body with the given status.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteError maps a service or storage error to its HTTP status and writes
// it. Unrecognized errors become a 500 and are logged.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chat.ErrValidation):
		WriteMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrUserNotFound),
		errors.Is(err, storage.ErrConversationNotFound):
		WriteMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrDuplicateEmail):
		WriteMessage(w, http.StatusConflict, err.Error())
	default:
		log.Printf("[API] internal error: %v", err)
		WriteMessage(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
