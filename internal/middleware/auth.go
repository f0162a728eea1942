package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/questweb/user-service/pkg/errs"
	"github.com/questweb/user-service/pkg/response"
	"github.com/questweb/user-service/pkg/utils"
)

// BearerAuth rejects requests without a valid bearer token and exposes the
// token's username claim to downstream handlers via the echo context.
func BearerAuth(jwtSecretKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, "Bearer ") {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn)
			}

			username, err := utils.ExtractTokenUsername(strings.TrimPrefix(header, "Bearer "), jwtSecretKey)
			if err != nil {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn)
			}

			c.Set("username", username)

			return next(c)
		}
	}
}
