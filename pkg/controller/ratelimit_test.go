package controller_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promptparser/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithRateLimit(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	// one request every 10 seconds, burst of 2
	h := controller.WithRateLimit(0.1, 2)(next)

	codes := make([]int, 0, 3)
	var last *http.Response
	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/parse", nil))
		last = rec.Result()
		codes = append(codes, last.StatusCode)
	}

	require.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
	require.Equal(t, "10", last.Header.Get("Retry-After"))
	require.Equal(t, "application/json", last.Header.Get("Content-Type"))

	body, err := io.ReadAll(last.Body)
	require.NoError(t, err)
	require.JSONEq(t, `{"code":"RATE_LIMITED","message":"too many requests"}`, string(body))
}

func TestWithRateLimit_Disabled(t *testing.T) {
	calls := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { calls++ })
	h := controller.WithRateLimit(0, 0)(next)

	for range 100 {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}
	require.Equal(t, 100, calls)
}

func TestWithMaxBodyBytes(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
	})
	h := controller.WithMaxBodyBytes(4)(next)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcd")))
	require.NoError(t, readErr)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", strings.NewReader("abcde")))
	var maxErr *http.MaxBytesError
	require.ErrorAs(t, readErr, &maxErr)
}
