package test

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/questweb/user-service/pkg/utils"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) Test_DeleteUser() {
	type TestCase struct {
		Name           string
		ActorID        int64
		ActorUsername  string
		TargetID       string
		ExpectedStatus int
	}

	testCases := []TestCase{
		{
			Name:           "Unknown target id",
			ActorID:        1,
			ActorUsername:  "admin",
			TargetID:       "99999",
			ExpectedStatus: http.StatusBadRequest,
		},
		{
			Name:           "Regular user deletes someone else",
			ActorID:        5,
			ActorUsername:  "alice-updated",
			TargetID:       "1",
			ExpectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			token, err := utils.CreateJWTToken(tc.ActorID, tc.ActorUsername, s.app.Config.JWTConfig.JWTSecret, s.app.Config.JWTConfig.JWTKid)
			require.NoError(s.T(), err)

			req, err := http.NewRequest(http.MethodDelete,
				fmt.Sprintf("http://localhost:%s/user/%s", s.app.Config.ServicePort, tc.TargetID),
				nil,
			)
			s.NoError(err)

			req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

			client := http.Client{}
			resp, err := client.Do(req)
			s.NoError(err)

			s.Equal(tc.ExpectedStatus, resp.StatusCode)
		})
	}
}
