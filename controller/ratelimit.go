package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

//RateLimit throttles the wrapped routes to {rps} calls per second.
//Non positive rps disables throttling.
func RateLimit(rps int) echo.MiddlewareFunc {
	if rps <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	limiter := rate.NewLimiter(rate.Limit(rps), rps)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow() {
				return c.String(http.StatusTooManyRequests, "Too many requests. Please, try later")
			}
			return next(c)
		}
	}
}
