package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"promptparser/pkg/controller"

	"github.com/stretchr/testify/require"
)

func requireCORSHeaders(t *testing.T, h http.Header) {
	t.Helper()

	require.Equal(t, "*", h.Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", h.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, h.Get("Access-Control-Allow-Headers"), "Authorization")
	require.Contains(t, h.Get("Access-Control-Allow-Methods"), "DELETE")
	require.Contains(t, h.Get("Access-Control-Expose-Headers"), "X-Request-Id")
}

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/prompts", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	requireCORSHeaders(t, res.Header)
}

func TestWithCORS_NormalRequest(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusAccepted)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/parse", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	res := rec.Result()
	require.Equal(t, http.StatusAccepted, res.StatusCode)
	requireCORSHeaders(t, res.Header)
}
