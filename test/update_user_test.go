package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/questweb/user-service/internal/dto"
	"github.com/questweb/user-service/pkg/utils"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) Test_UpdateUser() {
	type TestCase struct {
		Name           string
		ActorID        int64
		ActorUsername  string
		TargetID       string
		Request        dto.UserUpdateRequest
		ExpectedStatus int
	}

	username := "alice-updated"

	testCases := []TestCase{
		{
			Name:           "Admin updates another user",
			ActorID:        1,
			ActorUsername:  "admin",
			TargetID:       "5",
			Request:        dto.UserUpdateRequest{Username: &username},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Regular user updates someone else",
			ActorID:        5,
			ActorUsername:  "alice-updated",
			TargetID:       "1",
			Request:        dto.UserUpdateRequest{},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Admin updates unknown id",
			ActorID:        1,
			ActorUsername:  "admin",
			TargetID:       "99999",
			Request:        dto.UserUpdateRequest{},
			ExpectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			token, err := utils.CreateJWTToken(tc.ActorID, tc.ActorUsername, s.app.Config.JWTConfig.JWTSecret, s.app.Config.JWTConfig.JWTKid)
			require.NoError(s.T(), err)

			reqBody, err := json.Marshal(tc.Request)
			s.NoError(err)

			req, err := http.NewRequest(http.MethodPut,
				fmt.Sprintf("http://localhost:%s/user/%s", s.app.Config.ServicePort, tc.TargetID),
				bytes.NewBuffer(reqBody),
			)
			s.NoError(err)

			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

			client := http.Client{}
			resp, err := client.Do(req)
			s.NoError(err)

			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}
