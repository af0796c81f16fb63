package handler

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/naf3/admin-console-api/internal/upstream"
	"go.uber.org/zap"
)

// ProxyHandler forwards arbitrary console calls straight to the upstream
// backend without normalization. Two mounts exist, one per upstream base, so
// screens that need raw backend shapes can bypass the view-model layer.
type ProxyHandler struct {
	client     *upstream.Client
	httpClient *http.Client
	logger     *zap.Logger
}

// NewProxyHandler creates a new ProxyHandler
func NewProxyHandler(client *upstream.Client, logger *zap.Logger) *ProxyHandler {
	return &ProxyHandler{
		client:     client,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// ForwardAPI relays the request to the general API base.
func (h *ProxyHandler) ForwardAPI(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, h.client.APIBaseURL())
}

// ForwardAdmin relays the request to the admin API base.
func (h *ProxyHandler) ForwardAdmin(w http.ResponseWriter, r *http.Request) {
	h.forward(w, r, h.client.AdminBaseURL())
}

// forward replays method, path remainder, query string, body, and the
// Authorization header against the given base, then copies the upstream
// response back verbatim.
func (h *ProxyHandler) forward(w http.ResponseWriter, r *http.Request, base string) {
	rest := chi.URLParam(r, "*")
	target := base + "/" + strings.TrimPrefix(rest, "/")
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid proxy request")
		return
	}
	if ct := r.Header.Get("Content-Type"); ct != "" {
		req.Header.Set("Content-Type", ct)
	}
	if auth := r.Header.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.httpClient.Do(req)
	if err != nil {
		h.logger.Warn("Proxy request failed",
			zap.String("method", r.Method),
			zap.String("target", target),
			zap.Error(err),
		)
		respondWithError(w, http.StatusBadGateway, "Upstream request failed")
		return
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		h.logger.Warn("Proxy response copy interrupted", zap.Error(err))
	}
}
