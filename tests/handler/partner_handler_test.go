package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/naf3/admin-console-api/internal/config"
	"github.com/naf3/admin-console-api/internal/domain"
	"github.com/naf3/admin-console-api/internal/http/handler"
	"github.com/naf3/admin-console-api/internal/service"
	"github.com/naf3/admin-console-api/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newPartnerRouter wires a real service against a stub backend so the handler
// tests exercise the whole normalize pipeline.
func newPartnerRouter(backendURL string) http.Handler {
	client := upstream.NewClient(&config.UpstreamConfig{
		APIBaseURL:     backendURL,
		AdminBaseURL:   backendURL,
		RequestTimeout: 5,
	}, zap.NewNop())
	svc := service.NewPartnerService(client, zap.NewNop())
	h := handler.NewPartnerHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	r.Get("/partners", h.ListPartners)
	r.Get("/partners/{id}", h.GetPartner)
	r.Post("/partners/redeem-points", h.RedeemPoints)
	return r
}

const partnersBody = `{"partners":[
	{"id":"p-1","name":"Carrefour","email":"sales@carrefour.ae","isActive":true},
	{"id":"p-2","name":"Lulu","email":"hello@lulu.ae","status":"suspended"}
]}`

func stubBackend(status int, body string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
		}
		_, _ = w.Write([]byte(body))
	}))
}

func TestPartnerHandler_List(t *testing.T) {
	backend := stubBackend(http.StatusOK, partnersBody)
	defer backend.Close()
	router := newPartnerRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/partners", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var views []domain.PartnerView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, domain.StatusActive, views[0].Status)
	assert.Equal(t, domain.StatusSuspended, views[1].Status)
}

func TestPartnerHandler_List_QueryAndStatus(t *testing.T) {
	backend := stubBackend(http.StatusOK, partnersBody)
	defer backend.Close()
	router := newPartnerRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/partners?q=lulu&status=suspended", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var views []domain.PartnerView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "p-2", views[0].ID)
}

func TestPartnerHandler_List_UpstreamFailure(t *testing.T) {
	backend := stubBackend(http.StatusServiceUnavailable, `{"message":"maintenance window"}`)
	defer backend.Close()
	router := newPartnerRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/partners", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var apiErr domain.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	assert.Equal(t, "maintenance window", apiErr.Detail)
}

func TestPartnerHandler_Get(t *testing.T) {
	backend := stubBackend(http.StatusOK, partnersBody)
	defer backend.Close()
	router := newPartnerRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/partners/p-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var view domain.PartnerView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Carrefour", view.Name)
}

func TestPartnerHandler_Get_NotFound(t *testing.T) {
	backend := stubBackend(http.StatusOK, partnersBody)
	defer backend.Close()
	router := newPartnerRouter(backend.URL)

	req := httptest.NewRequest(http.MethodGet, "/partners/p-404", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPartnerHandler_RedeemPoints_Validation(t *testing.T) {
	backend := stubBackend(http.StatusOK, `{}`)
	defer backend.Close()
	router := newPartnerRouter(backend.URL)

	t.Run("missing amount", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/partners/redeem-points",
			strings.NewReader(`{"nationalId":"784-1990"}`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var apiErr domain.APIError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
		assert.Contains(t, apiErr.Errors, "amount")
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/partners/redeem-points",
			strings.NewReader(`{not json`))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPartnerHandler_RedeemPoints_Success(t *testing.T) {
	backend := stubBackend(http.StatusOK, `{"success":true,"remainingPoints":120}`)
	defer backend.Close()
	router := newPartnerRouter(backend.URL)

	req := httptest.NewRequest(http.MethodPost, "/partners/redeem-points",
		strings.NewReader(`{"nationalId":"784-1990","virtualCardCode":"VC-1","amount":50}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var result map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, true, result["success"])
}
