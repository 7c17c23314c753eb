// Package auth exposes the registration and login endpoints.
package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/maheshmeenabalot/chat-app-backend/internal/api"
	authtoken "github.com/maheshmeenabalot/chat-app-backend/internal/auth"
	"github.com/maheshmeenabalot/chat-app-backend/internal/chat"
	"github.com/maheshmeenabalot/chat-app-backend/internal/models"
	"github.com/maheshmeenabalot/chat-app-backend/internal/session"
	"github.com/maheshmeenabalot/chat-app-backend/internal/storage"
)

// Handler serves /api/register and /api/login.
type Handler struct {
	Users         storage.UserStore
	Sessions      session.Store
	Authenticator *authtoken.Authenticator
}

// Register creates a new account with a bcrypt-hashed password.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FullName string `json:"fullName"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.FullName == "" || req.Email == "" || req.Password == "" {
		api.WriteMessage(w, http.StatusBadRequest, "Please fill all required fields")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := h.Users.Create(r.Context(), user); err != nil {
		api.WriteError(w, err)
		return
	}

	log.Printf("[AUTH] registered user %s", user.ID)
	api.WriteMessage(w, http.StatusCreated, "New user registered successfully")
}

// Login verifies credentials, issues a JWT, records it as the user's last
// session token and in the session store.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		api.WriteMessage(w, http.StatusBadRequest, "Please fill all required fields")
		return
	}

	user, err := h.Users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if err == storage.ErrUserNotFound {
			api.WriteMessage(w, http.StatusUnauthorized, "User email or password is incorrect")
			return
		}
		api.WriteError(w, err)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		api.WriteMessage(w, http.StatusUnauthorized, "User email or password is incorrect")
		return
	}

	token, err := h.Authenticator.GenerateToken(user.ID, user.Email)
	if err != nil {
		api.WriteError(w, err)
		return
	}
	if err := h.Users.SetSessionToken(r.Context(), user.ID, token); err != nil {
		api.WriteError(w, err)
		return
	}
	if err := h.Sessions.Save(r.Context(), token, user.ID, h.Authenticator.Validity()); err != nil {
		api.WriteError(w, err)
		return
	}

	log.Printf("[AUTH] user %s logged in", user.ID)
	api.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"user": chat.UserSummary{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
		"token": token,
	})
}
