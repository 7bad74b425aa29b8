//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/arjitrawat15/Stavia/internal/handler/dto/request"
	"github.com/arjitrawat15/Stavia/internal/pkg/cookie"
	"github.com/arjitrawat15/Stavia/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type Session struct {
	UserID uuid.UUID
	Email  string
	Token  string
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	accessCookie := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, accessCookie, "Access token not found in cookies")
	require.NotEmpty(t, accessCookie.Value, "Access token cookie is empty")

	return accessCookie.Value
}

// SignupUser registers an account through the API and returns its session.
func SignupUser(t *testing.T, router *gin.Engine, fullName, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/signup",
		request.SignupRequest{FullName: fullName, Email: email, Password: password}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Token  string    `json:"token"`
		UserID uuid.UUID `json:"userId"`
		Email  string    `json:"email"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	return Session{UserID: body.UserID, Email: body.Email, Token: body.Token}
}
