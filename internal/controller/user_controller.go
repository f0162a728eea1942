package controller

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/questweb/user-service/internal/dto"
	"github.com/questweb/user-service/internal/service"
	"github.com/questweb/user-service/pkg/errs"
	"github.com/questweb/user-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.UserService
}

func CreateController(e *echo.Group, service service.UserService) {
	uc := Controller{
		service: service,
	}
	e.GET("/user", uc.GetUsers)
	e.GET("/user/:id", uc.GetUserByID)
	e.GET("/user/:id/addresses", uc.GetUserAddresses)
	e.PUT("/user/:id", uc.UpdateUser)
	e.DELETE("/user/:id", uc.DeleteUser)
}

func (c *Controller) GetUsers(e echo.Context) error {
	resp, err := c.service.GetUsers(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *Controller) GetUserByID(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	resp, err := c.service.GetUserByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *Controller) GetUserAddresses(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	resp, err := c.service.GetUserAddresses(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *Controller) UpdateUser(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	payload := dto.UserUpdateRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateUser").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	resp, err := c.service.UpdateUser(e.Request().Context(), actingUsername(e), id, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, resp)
}

func (c *Controller) DeleteUser(e echo.Context) error {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient)
	}

	err = c.service.DeleteUser(e.Request().Context(), actingUsername(e), id)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, "Success")
}

// actingUsername returns the username claim stashed by the bearer-auth
// middleware.
func actingUsername(e echo.Context) string {
	username, _ := e.Get("username").(string)
	return username
}
