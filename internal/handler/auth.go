package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/z1f7/832301306-contacts-backend/internal/service"
)

// AuthHandler exposes registration and login over HTTP.
//
// Handlers only parse requests and write responses; every rule (presence
// checks, hashing, the collapsed login error) lives in the service.
type AuthHandler struct {
	auth   *service.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth *service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		logger: logger,
	}
}

// credentialsRequest is the body of both POST /register and POST /login.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse carries the authenticated user's id. There is no session or
// token — the frontend keeps the id and sends it with contact requests.
type loginResponse struct {
	UserID int64 `json:"user_id"`
}

// HandleRegister creates a new account.
//
// HTTP: POST /register
// Body: {"username": "...", "password": "..."}
//
// 201 on success; 400 when a field is missing or the username is taken.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("register: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	if _, err := h.auth.Register(r.Context(), req.Username, req.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Msg: "Registration successful"})
}

// HandleLogin checks a username/password pair.
//
// HTTP: POST /login
// Body: {"username": "...", "password": "..."}
//
// 200 with {"user_id": N} on a match; 401 otherwise (same response for an
// unknown username and a wrong password); 400 when a field is missing.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("login: invalid JSON", slog.String("error", err.Error()))
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid JSON body"})
		return
	}

	user, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{UserID: user.ID})
}
