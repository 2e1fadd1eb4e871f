package http

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shelfwise/catalog-service/pkg/logger"
)

// ResponseCache caches read-endpoint responses in Redis. Only GET
// requests are cached; a successful response is stored under a hashed
// key of method, path and query string.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResponseCache creates a response cache with the given TTL. A TTL
// of zero falls back to 30 seconds, short enough that dashboard
// numbers stay close to fresh under writes.
func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &ResponseCache{client: client, ttl: ttl}
}

// Middleware wraps a read endpoint with cache lookup and store
func (c *ResponseCache) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c.client == nil || r.Method != http.MethodGet {
			next(w, r)
			return
		}

		key := cacheKey(r)

		cached, err := c.client.Get(r.Context(), key).Bytes()
		if err == nil && len(cached) > 0 {
			logger.WithContext(r.Context()).Debug().
				Str("path", r.URL.Path).
				Str("cache_key", key).
				Msg("Cache hit")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write(cached)
			return
		}

		logger.WithContext(r.Context()).Debug().
			Str("path", r.URL.Path).
			Str("cache_key", key).
			Msg("Cache miss")

		cw := &captureWriter{ResponseWriter: w, statusCode: http.StatusOK}
		cw.Header().Set("X-Cache", "MISS")
		next(cw, r)

		if cw.statusCode == http.StatusOK && cw.body.Len() > 0 {
			if err := c.client.Set(r.Context(), key, cw.body.Bytes(), c.ttl).Err(); err != nil {
				logger.WithContext(r.Context()).Warn().
					Err(err).
					Str("cache_key", key).
					Msg("Failed to cache response")
			}
		}
	}
}

// Invalidate removes all cached entries matching the pattern
func (c *ResponseCache) Invalidate(pattern string) error {
	if c.client == nil {
		return nil
	}

	ctx := context.Background()
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
		logger.Logger.Info().
			Int("count", len(keys)).
			Str("pattern", pattern).
			Msg("Cache invalidated")
	}

	return nil
}

// cacheKey hashes method, path and query into a stable Redis key
func cacheKey(r *http.Request) string {
	components := fmt.Sprintf("%s:%s:%s", r.Method, r.URL.Path, r.URL.RawQuery)
	hash := sha256.Sum256([]byte(components))
	return fmt.Sprintf("catalog:cache:%s", hex.EncodeToString(hash[:]))
}

// captureWriter tees the response body so it can be stored after the
// handler runs
type captureWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.statusCode = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.body.Write(b)
	return cw.ResponseWriter.Write(b)
}
