package http

import (
	"sync"
	"time"

	"github.com/foodops/stockbook/pkg/mlog"
	"github.com/gofiber/fiber/v2"
)

// WithHTTPLogging logs one access line per request: method, path, status and
// duration. The body is never logged.
func WithHTTPLogging(logger mlog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		logger.Infof("%s %s %d %s",
			c.Method(),
			c.Path(),
			c.Response().StatusCode(),
			time.Since(start),
		)

		return err
	}
}

// WithRequestSerialization serializes request handling behind a whole-process
// lock. The repository, cache, settings and event bus assume single-writer
// access; parallel fiber workers must not reach them concurrently.
func WithRequestSerialization(mu *sync.Mutex) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mu.Lock()
		defer mu.Unlock()

		return c.Next()
	}
}
