package upstream_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/naf3/admin-console-api/internal/auth"
	"github.com/naf3/admin-console-api/internal/config"
	"github.com/naf3/admin-console-api/internal/upstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(apiURL, adminURL string) *upstream.Client {
	return upstream.NewClient(&config.UpstreamConfig{
		APIBaseURL:     apiURL,
		AdminBaseURL:   adminURL,
		LoginPath:      "/auth/admin/login",
		RequestTimeout: 5,
	}, zap.NewNop())
}

func TestClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/partners", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"partners":[{"id":"p-1"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	raw, err := client.Get(context.Background(), "/partners")
	require.NoError(t, err)

	rec, ok := raw.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, rec, "partners")
}

func TestClient_Get_RelaysBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)
	ctx := auth.WithToken(context.Background(), "tok-1")

	_, err := client.Get(ctx, "/donors")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
}

func TestClient_Get_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	_, err := client.Get(context.Background(), "/donors")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_Get_NonOKPrefersBackendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Admins only"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	_, err := client.Get(context.Background(), "/partners")
	require.Error(t, err)

	var ue *upstream.Error
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusForbidden, ue.StatusCode)
	assert.Equal(t, "Admins only", ue.Message)
}

func TestClient_Get_NonOKWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`not even json`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	_, err := client.Get(context.Background(), "/partners")

	var ue *upstream.Error
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "Request failed", ue.Message)
}

func TestClient_Get_UndecodableSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken":`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	_, err := client.Get(context.Background(), "/partners")

	var ue *upstream.Error
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, http.StatusOK, ue.StatusCode)
}

func TestClient_Get_EmptyBodyIsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	raw, err := client.Get(context.Background(), "/partners")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestClient_Get_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := newTestClient(server.URL, server.URL)

	_, err := client.Get(context.Background(), "/partners")

	var ue *upstream.Error
	require.True(t, errors.As(err, &ue))
	assert.Zero(t, ue.StatusCode)
}

func TestClient_AdminGet_UsesAdminBase(t *testing.T) {
	var apiHit, adminHit bool
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiHit = true
		_, _ = w.Write([]byte(`[]`))
	}))
	defer apiServer.Close()
	adminServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminHit = true
		_, _ = w.Write([]byte(`[]`))
	}))
	defer adminServer.Close()

	client := newTestClient(apiServer.URL, adminServer.URL)

	_, err := client.AdminGet(context.Background(), "/reports")
	require.NoError(t, err)
	assert.True(t, adminHit)
	assert.False(t, apiHit)
}

func TestClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/admin/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"token":"tok-1","role":"admin"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	raw, status, err := client.Login(context.Background(), map[string]string{"email": "a@b.c", "password": "x"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)

	rec, ok := raw.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tok-1", rec["token"])
}

func TestClient_Login_RelaysUpstreamStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL)

	raw, status, err := client.Login(context.Background(), map[string]string{"email": "a@b.c", "password": "wrong"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)

	rec, ok := raw.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", rec["message"])
}
