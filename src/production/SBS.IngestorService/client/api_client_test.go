package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(url string) *APIClient {
	c := NewAPIClient(url)
	c.retryDelay = time.Millisecond
	return c
}

func TestSubmitReadingForwardsPayloadVerbatim(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	payload := `{"temp":25,"ldr":500}`
	err := newTestClient(srv.URL).SubmitReading(context.Background(), []byte(payload))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSubmitReadingDoesNotRetryBadRequest(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	// A malformed device payload stays malformed; treat it as handled.
	err := newTestClient(srv.URL).SubmitReading(context.Background(), []byte("garbage"))
	assert.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestSubmitReadingRetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SubmitReading(context.Background(), []byte(`{"temp":25}`))
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestSubmitReadingGivesUpAfterMaxRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).SubmitReading(context.Background(), []byte(`{"temp":25}`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "operation failed after")
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health/live" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	assert.NoError(t, newTestClient(srv.URL).Health(context.Background()))
}
