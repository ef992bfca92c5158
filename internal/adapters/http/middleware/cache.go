package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// CacheControl sets cache headers for responses
func CacheControl(maxAge time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Process request first
		err := c.Next()

		// Set cache headers only for successful GET requests
		if c.Method() == "GET" && c.Response().StatusCode() == 200 {
			seconds := int(maxAge.Seconds())
			c.Set("Cache-Control", "public, max-age="+strconv.Itoa(seconds))
		}

		return err
	}
}

// SiteContentCache returns cache middleware for public site content and
// the vault catalog (10 minute cache)
func SiteContentCache() fiber.Handler {
	return CacheControl(10 * time.Minute)
}

// NoCacheHeaders sets no-cache headers (chat, dashboards)
func NoCacheHeaders() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Cache-Control", "no-store, no-cache, must-revalidate")
		c.Set("Pragma", "no-cache")
		c.Set("Expires", "0")
		return c.Next()
	}
}
