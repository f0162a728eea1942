package test

import (
	"fmt"
	"io"
	"net/http"

	"github.com/questweb/user-service/pkg/utils"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestGetUserByID() {
	type TestCase struct {
		Name           string
		UserID         string
		ExpectedStatus int
		ExpectedBody   string
	}

	testCases := []TestCase{
		{
			Name:           "Existing user",
			UserID:         "1",
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Unknown user",
			UserID:         "99999",
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   `{"error":"User ID doesn't exist: 99999"}`,
		},
	}

	token, err := utils.CreateJWTToken(1, "admin", s.app.Config.JWTConfig.JWTSecret, s.app.Config.JWTConfig.JWTKid)
	require.NoError(s.T(), err)

	for _, tc := range testCases {
		s.Run(tc.Name, func() {
			url := fmt.Sprintf("http://localhost:%s/user/%s", s.app.Config.ServicePort, tc.UserID)
			req, err := http.NewRequest("GET", url, nil)
			s.NoError(err)

			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			s.NoError(err)
			defer resp.Body.Close()

			s.Equal(tc.ExpectedStatus, resp.StatusCode)

			if tc.ExpectedBody != "" {
				body, err := io.ReadAll(resp.Body)
				s.NoError(err)
				s.JSONEq(tc.ExpectedBody, string(body))
			}
		})
	}
}

func (s *IntegrationTestSuite) TestGetUserAddresses() {
	token, err := utils.CreateJWTToken(1, "admin", s.app.Config.JWTConfig.JWTSecret, s.app.Config.JWTConfig.JWTKid)
	require.NoError(s.T(), err)

	url := fmt.Sprintf("http://localhost:%s/user/1/addresses", s.app.Config.ServicePort)
	req, err := http.NewRequest("GET", url, nil)
	require.NoError(s.T(), err)

	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	s.Equal(http.StatusOK, resp.StatusCode)
}
