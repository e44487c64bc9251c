package middlewares

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/mergeguard/mergeguard/monitoring"
)

// recoverMiddleware converts handler panics into 500 responses and reports
// them to the error tracker.
func recoverMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					monitoring.RecoverAndAlert("panic in request handler", fmt.Errorf("%v", r))
					err = echo.NewHTTPError(500, "internal server error")
				}
			}()
			return next(ctx)
		}
	}
}
