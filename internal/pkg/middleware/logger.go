package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nmfalves/sentinela/internal/pkg/logger"
)

// RequestLoggerMiddleware logs each request with latency and status.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			latency := time.Since(start)
			status := c.Response().Status

			fields := []logger.Field{
				logger.String("method", c.Request().Method),
				logger.String("path", c.Request().URL.Path),
				logger.Int("status", status),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("request_id", fmt.Sprintf("%v", c.Get("request_id"))),
			}

			switch {
			case status >= 500:
				logger.Error("Server error", fields...)
			case status >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request processed", fields...)
			}

			return nil
		}
	}
}
