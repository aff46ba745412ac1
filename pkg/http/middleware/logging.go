package middleware

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogging logs one line per completed request. Paths listed in
// skipPaths (typically the Prometheus scrape path) are not logged.
func RequestLogging(skipPaths ...string) echo.MiddlewareFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			req := c.Request()
			if _, ok := skip[req.URL.Path]; ok {
				return err
			}
			log.Printf("%s %s -> %d in %s (%s)",
				req.Method,
				req.RequestURI,
				c.Response().Status,
				time.Since(start).Round(time.Microsecond),
				req.RemoteAddr,
			)
			return err
		}
	}
}
