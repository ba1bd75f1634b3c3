//go:build e2e_test || all_tests

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/2beens/workoutlog/internal/auth"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

const testPassword = "testpass"

// do sends a JSON request as the given session token (empty for anonymous calls).
func (s *E2ETestSuite) do(ctx context.Context, method, path, token string, body any) *http.Response {
	t := s.T()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, serverEndpoint+path, reqBody)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends the request, checks the status and decodes the body into out (if not nil).
func (s *E2ETestSuite) doJSON(ctx context.Context, method, path, token string, body any, expectedStatus int, out any) {
	t := s.T()
	resp := s.do(ctx, method, path, token, body)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, expectedStatus, resp.StatusCode, "%s %s: %s", method, path, respBytes)

	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out), string(respBytes))
	}
}

// newUser signs up a fresh user and logs it in.
func (s *E2ETestSuite) newUser(ctx context.Context) (string, auth.Identity) {
	credentials := auth.Credentials{
		Email:    gofakeit.Email(),
		Password: testPassword,
	}

	var user auth.User
	s.doJSON(ctx, "POST", "/a/signup", "", credentials, http.StatusCreated, &user)

	var loginResp auth.LoginResponse
	s.doJSON(ctx, "POST", "/a/login", "", credentials, http.StatusOK, &loginResp)
	require.NotEmpty(s.T(), loginResp.Token)
	require.Equal(s.T(), user.ID, loginResp.Identity.UserID)

	return loginResp.Token, loginResp.Identity
}

func (s *E2ETestSuite) exerciseID(name string) int {
	var id int
	require.NoError(s.T(), s.DB.QueryRow(`SELECT id FROM exercises WHERE name = $1`, name).Scan(&id))
	return id
}

func (s *E2ETestSuite) count(query string, args ...any) int {
	var n int
	require.NoError(s.T(), s.DB.QueryRow(query, args...).Scan(&n), fmt.Sprintf("count: %s", query))
	return n
}
