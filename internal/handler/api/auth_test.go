//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/arjitrawat15/Stavia/internal/handler/api"
	resdto "github.com/arjitrawat15/Stavia/internal/handler/dto/response"
	"github.com/arjitrawat15/Stavia/internal/handler/httperr"
	"github.com/arjitrawat15/Stavia/internal/pkg/config"
	"github.com/arjitrawat15/Stavia/internal/pkg/cookie"
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"
	"github.com/arjitrawat15/Stavia/tests/common/builder"
	"github.com/arjitrawat15/Stavia/tests/common/httptest"
	"github.com/arjitrawat15/Stavia/tests/common/testutil"
	commandsmock "github.com/arjitrawat15/Stavia/tests/mock/commands"
	queriesmock "github.com/arjitrawat15/Stavia/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	userID       uuid.UUID
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	handler := api.NewAuthHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())
	s.userID = uuid.New()

	s.router.POST("/auth/signup", handler.Signup)
	s.router.POST("/auth/login", handler.Login)
	s.router.POST("/auth/logout", handler.Logout)
	s.router.GET("/auth/me", fakeAuth(s.userID), handler.Me)
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) authResult() *commands.AuthResult {
	return &commands.AuthResult{
		Token:     "signed.jwt.token",
		ExpiresIn: time.Hour,
		UserID:    s.userID,
		Email:     "test@example.com",
		FullName:  "Test User",
	}
}

func (s *AuthHandlerTestSuite) TestSignup() {
	reqBody := builder.NewUserBuilder().BuildSignupDTO()

	s.Run("success: 201 with token and session cookie", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), reqBody.ToInput()).Return(s.authResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/signup", reqBody, "")

		var body resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("signed.jwt.token", body.Token)
		s.Equal(int64(3600), body.ExpiresIn)
		s.Equal(s.userID, body.UserID)

		c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(c)
		s.Equal("signed.jwt.token", c.Value)
		s.True(c.HttpOnly)
	})

	s.Run("error: 409 when the email is taken", func() {
		s.mockCommands.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, commands.ErrEmailTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/signup", reqBody, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, httperr.KindConflict)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing fullName", testutil.Field("fullName", nil)},
			{"invalid email", testutil.Field("email", "nope")},
			{"short password", testutil.Field("password", "12345")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/signup", requestMap, "")
				httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, httperr.KindValidation)
				s.Nil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
			})
		}
	})
}

func (s *AuthHandlerTestSuite) TestLogin() {
	reqBody := builder.NewAuthBuilder().BuildDTO()

	s.Run("success: 200 with session cookie", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody.ToInput()).Return(s.authResult(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", reqBody, "")

		var body resdto.AuthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("test@example.com", body.Email)
		s.NotNil(httptest.ExtractCookie(rec, cookie.AccessTokenCookieName))
	})

	s.Run("error: 401 on bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, commands.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", reqBody, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusUnauthorized, httperr.KindUnauthenticated)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("error: 400 on missing password", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("password", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/login", requestMap, "")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, httperr.KindValidation)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
	s.Require().NotNil(c)
	s.Empty(c.Value)
	s.Less(c.MaxAge, 0)
}

func (s *AuthHandlerTestSuite) TestMe() {
	s.Run("success", func() {
		view := builder.NewUserBuilder().WithID(s.userID).BuildReadModel()
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var body resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.userID, body.ID)
		s.Equal(view.FullName, body.FullName)
	})

	s.Run("error: 404 when the account is gone", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), s.userID).Return(nil, queries.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, httperr.KindNotFound)
	})
}
