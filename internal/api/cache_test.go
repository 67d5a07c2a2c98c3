// Copyright (c) 2026 Daleel Balady. All rights reserved.

package api_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daleelbalady/daleel/internal/api"
)

/*
TestCacheBrowse_NilClientPassesThrough verifies that running without redis
(dry runs, local development) leaves the handler chain untouched.
*/
func TestCacheBrowse_NilClientPassesThrough(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := api.CacheBrowse(nil, "directory:shops:", logger)(
		http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_, _ = writer.Write([]byte(`{"data":[]}`))
		}),
	)

	// 1. The request reaches the handler and the response is unmarked
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/shops?page=1", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `{"data":[]}`, recorder.Body.String())
	assert.Empty(t, recorder.Header().Get("X-Cache"))
}
