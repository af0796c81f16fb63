package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/naf3/admin-console-api/internal/auth"
	"github.com/naf3/admin-console-api/internal/config"
	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/http/handler"
	"github.com/naf3/admin-console-api/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthRouter(backendURL string) http.Handler {
	client := upstream.NewClient(&config.UpstreamConfig{
		APIBaseURL:     backendURL,
		AdminBaseURL:   backendURL,
		LoginPath:      "/auth/admin/login",
		RequestTimeout: 5,
	}, zap.NewNop())
	h := handler.NewAuthHandler(client, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/auth/login", h.Login)
	r.With(auth.TokenRelay).Get("/auth/me", h.Me)
	return r
}

func TestAuthHandler_Login_Success(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/admin/login", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"accessToken":"tok-1"},"role":"admin","email":"admin@naf3.org"}`))
	}))
	defer backend.Close()
	router := newAuthRouter(backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"admin@naf3.org","password":"secret"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var session domain.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "tok-1", session.Token)
	assert.Equal(t, "admin", session.Role)
	assert.Equal(t, "admin@naf3.org", session.Email)
}

func TestAuthHandler_Login_InvalidCredentialsRelayed(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer backend.Close()
	router := newAuthRouter(backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"admin@naf3.org","password":"wrong"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, "Invalid credentials", apiErr.Detail)
}

func TestAuthHandler_Login_Validation(t *testing.T) {
	router := newAuthRouter("http://127.0.0.1:0")

	tests := []struct {
		name string
		body string
	}{
		{"missing password", `{"email":"admin@naf3.org"}`},
		{"bad email", `{"email":"not-an-email","password":"x"}`},
		{"malformed json", `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Login_TokenlessSuccessBody(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"ok but no token"}`))
	}))
	defer backend.Close()
	router := newAuthRouter(backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"admin@naf3.org","password":"secret"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	router := newAuthRouter("http://127.0.0.1:0")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role":  "admin",
		"email": "me@naf3.org",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var session domain.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	assert.Equal(t, "admin", session.Role)
	assert.Equal(t, "me@naf3.org", session.Email)
}

func TestAuthHandler_Me_NoToken(t *testing.T) {
	router := newAuthRouter("http://127.0.0.1:0")

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
