package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/questweb/user-service/pkg/errs"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteSuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func WriteErrorResponse(c echo.Context, err error) error {
	statusCode := errs.GetErrorStatusCode(err)

	return c.JSON(statusCode, ErrorResponse{Error: err.Error()})
}
