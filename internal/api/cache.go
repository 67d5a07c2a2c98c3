// Copyright (c) 2026 Daleel Balady. All rights reserved.

package api

import (
	"bytes"
	"log/slog"
	"net/http"

	goredis "github.com/redis/go-redis/v9"

	"github.com/daleelbalady/daleel/internal/platform/constants"
)

// cachedWriter buffers a response so a successful body can be stored after
// the handler returns.
type cachedWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (writer *cachedWriter) WriteHeader(code int) {
	writer.status = code
	writer.ResponseWriter.WriteHeader(code)
}

func (writer *cachedWriter) Write(data []byte) (int, error) {
	writer.body.Write(data)
	return writer.ResponseWriter.Write(data)
}

// CacheBrowse serves GET responses from redis for the browse TTL window.
// Keys are the route prefix plus the request URI, so every pagination and
// filter combination caches independently. Cache failures degrade to an
// uncached response, never to an error.
func CacheBrowse(cache *goredis.Client, prefix string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if cache == nil || request.Method != http.MethodGet {
				next.ServeHTTP(writer, request)
				return
			}

			key := prefix + request.URL.RequestURI()

			if cached, err := cache.Get(request.Context(), key).Bytes(); err == nil {
				writer.Header().Set("Content-Type", "application/json; charset=utf-8")
				writer.Header().Set("X-Cache", "HIT")
				writer.WriteHeader(http.StatusOK)
				_, _ = writer.Write(cached)
				return
			}

			buffered := &cachedWriter{ResponseWriter: writer, status: http.StatusOK}
			next.ServeHTTP(buffered, request)

			if buffered.status == http.StatusOK {
				err := cache.Set(request.Context(), key, buffered.body.Bytes(), constants.BrowseCacheTTL).Err()
				if err != nil {
					logger.Warn("browse_cache_store_failed",
						slog.String("key", key),
						slog.String("error", err.Error()),
					)
				}
			}
		})
	}
}
