//go:build e2e

package auth_test

import (
	"encoding/json"
	"net/http"
	"testing"

	reqdto "court-reserve/internal/handler/dto/request"
	resdto "court-reserve/internal/handler/dto/response"
	"court-reserve/tests/common/dbtest"
	"court-reserve/tests/common/httptest"
	"court-reserve/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL                = "/api/auth/login"
	logoutURL               = "/api/auth/logout"
	meURL                   = "/api/auth/me"
	passwordResetURL        = "/api/auth/password-reset"
	passwordResetConfirmURL = "/api/auth/password-reset/confirm"
	emailChangeURL          = "/api/auth/email-change"
	emailChangeConfirmURL   = "/api/auth/email-change/confirm"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "test@example.com", "Test Member")
	dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "Inactive Member")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
	require.NoError(s.T(), err)
}

func (s *authSuite) login(email, password string) (*resdto.LoginResponse, int) {
	t := s.T()

	reqBody := reqdto.LoginRequest{Email: email, Password: password}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
	if w.Code != http.StatusOK {
		return nil, w.Code
	}

	var loginRes resdto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginRes))
	return &loginRes, w.Code
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "test@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive user",
			email:          "inactive@example.com",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty email",
			email:          "",
			password:       dbtest.TestPassword,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			loginRes, code := s.login(tt.email, tt.password)
			require.Equal(t, tt.expectedStatus, code)

			if tt.expectedStatus == http.StatusOK {
				require.NotEmpty(t, loginRes.AccessToken)
				require.Equal(t, tt.email, loginRes.User.Email)

				var lastLogin any
				err := s.DB.QueryRow(s.T().Context(),
					"SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestMe() {
	s.Run("returns the authenticated user", func() {
		t := s.T()

		loginRes, code := s.login("test@example.com", dbtest.TestPassword)
		require.Equal(t, http.StatusOK, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, loginRes.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "test@example.com")
		require.NotContains(t, w.Body.String(), "password")
	})

	s.Run("rejects missing and garbage tokens", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "invalid-token")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears the session cookie", func() {
		t := s.T()

		loginRes, code := s.login("test@example.com", dbtest.TestPassword)
		require.Equal(t, http.StatusOK, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, loginRes.AccessToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, cleared)
		require.Empty(t, cleared.Value)
	})
}

func (s *authSuite) TestPasswordReset() {
	s.Run("full reset flow changes the password", func() {
		t := s.T()

		reqBody := reqdto.PasswordResetRequest{Email: "test@example.com"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, passwordResetURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code)

		var issued resdto.TokenIssuedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
		require.NotEmpty(t, issued.Token)

		confirm := reqdto.PasswordResetConfirmRequest{Token: issued.Token, NewPassword: "changed-pass-1"}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, passwordResetConfirmURL, confirm, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// old password no longer works, the new one does
		_, code := s.login("test@example.com", dbtest.TestPassword)
		require.Equal(t, http.StatusUnauthorized, code)
		_, code = s.login("test@example.com", "changed-pass-1")
		require.Equal(t, http.StatusOK, code)

		// the token was consumed on first use
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, passwordResetConfirmURL, confirm, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("unknown email gets the same answer", func() {
		t := s.T()

		reqBody := reqdto.PasswordResetRequest{Email: "nonexistent@example.com"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, passwordResetURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code)

		var issued resdto.TokenIssuedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
		require.Empty(t, issued.Token)
	})
}

func (s *authSuite) TestEmailChange() {
	s.Run("full change flow moves the login to the new address", func() {
		t := s.T()

		loginRes, code := s.login("test@example.com", dbtest.TestPassword)
		require.Equal(t, http.StatusOK, code)

		reqBody := reqdto.EmailChangeRequest{NewEmail: "renamed@example.com"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, emailChangeURL, reqBody, loginRes.AccessToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var issued resdto.TokenIssuedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))
		require.NotEmpty(t, issued.Token)

		confirm := reqdto.EmailChangeConfirmRequest{Token: issued.Token}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, emailChangeConfirmURL, confirm, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		_, code = s.login("test@example.com", dbtest.TestPassword)
		require.Equal(t, http.StatusUnauthorized, code)
		_, code = s.login("renamed@example.com", dbtest.TestPassword)
		require.Equal(t, http.StatusOK, code)
	})

	s.Run("cannot take over an existing address", func() {
		t := s.T()

		dbtest.CreateTestUser(s.T(), s.DB, "taken@example.com", "Other Member")

		loginRes, code := s.login("test@example.com", dbtest.TestPassword)
		require.Equal(t, http.StatusOK, code)

		reqBody := reqdto.EmailChangeRequest{NewEmail: "taken@example.com"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, emailChangeURL, reqBody, loginRes.AccessToken)
		require.Equal(t, http.StatusOK, w.Code)

		var issued resdto.TokenIssuedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &issued))

		confirm := reqdto.EmailChangeConfirmRequest{Token: issued.Token}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, emailChangeConfirmURL, confirm, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}
