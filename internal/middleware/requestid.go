package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type IDGenerator interface {
	Next() string
}

// RequestID keeps an incoming X-Request-ID and otherwise assigns one from gen.
func RequestID(gen IDGenerator) echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: gen.Next,
	})
}
