package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// bodyRecorder tees the response body so a successful JSON reply can be
// stored after it has been sent.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheGET serves repeated GETs of the slow-changing catalog routes
// from Redis.  Only 200 responses are stored, keyed by route and query,
// for the given TTL.  With a nil client or a zero TTL the middleware is
// a pass-through, matching how the rest of the service degrades when
// Redis is absent.
func CacheGET(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rdb == nil || ttl <= 0 || c.Request().Method != http.MethodGet {
				return next(c)
			}
			key := "cache:" + c.Path() + "?" + c.Request().URL.RawQuery
			ctx := c.Request().Context()

			if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
				return c.JSONBlob(http.StatusOK, body)
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				return err
			}
			if rec.status == http.StatusOK {
				_ = rdb.Set(ctx, key, rec.buf.Bytes(), ttl).Err()
			}
			return nil
		}
	}
}
