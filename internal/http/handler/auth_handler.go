package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/naf3/admin-console-api/internal/auth"
	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/upstream"
	"go.uber.org/zap"
)

// AuthHandler proxies admin login against the upstream backend and reports
// the current session.
type AuthHandler struct {
	client *upstream.Client
	logger *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(client *upstream.Client, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{client: client, logger: logger}
}

// Login forwards admin credentials upstream. On success the response carries
// the extracted bearer token plus display claims; upstream rejections are
// relayed with their original status and message.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		respondValidationError(w, err)
		return
	}

	raw, status, err := h.client.Login(r.Context(), &req)
	if err != nil {
		var ue *upstream.Error
		if errors.As(err, &ue) {
			respondWithError(w, http.StatusBadGateway, ue.Message)
			return
		}
		respondWithError(w, http.StatusBadGateway, "Login proxy failed.")
		return
	}

	if status < 200 || status > 299 {
		h.logger.Info("Upstream rejected login", zap.Int("status", status))
		respondWithError(w, status, loginFailureMessage(raw))
		return
	}

	session := auth.NewSession(raw)
	if session.Token == "" {
		h.logger.Warn("Login response carried no token")
		respondWithError(w, http.StatusBadGateway, "Login response did not include a token")
		return
	}

	respondJSON(w, http.StatusOK, session)
}

// Me rebuilds session display state from the relayed bearer token.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	token, ok := auth.TokenFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Missing bearer token")
		return
	}
	respondJSON(w, http.StatusOK, auth.SessionFromToken(token))
}

// loginFailureMessage pulls the backend's own message out of a failed login
// body so the console shows the same text the backend produced.
func loginFailureMessage(raw any) string {
	if rec, ok := raw.(map[string]any); ok {
		if msg, ok := rec["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return "Login failed"
}
