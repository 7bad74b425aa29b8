package api

import (
	"net/http"

	reqdto "github.com/arjitrawat15/Stavia/internal/handler/dto/request"
	resdto "github.com/arjitrawat15/Stavia/internal/handler/dto/response"
	"github.com/arjitrawat15/Stavia/internal/handler/httperr"
	"github.com/arjitrawat15/Stavia/internal/handler/middleware"
	"github.com/arjitrawat15/Stavia/internal/pkg/config"
	"github.com/arjitrawat15/Stavia/internal/pkg/cookie"
	"github.com/arjitrawat15/Stavia/internal/usecase/commands"
	"github.com/arjitrawat15/Stavia/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var authErrorMap = []errorMapping{
	{commands.ErrInvalidSignup, http.StatusBadRequest, httperr.KindValidation, "Invalid signup data"},
	{commands.ErrEmailTaken, http.StatusConflict, httperr.KindConflict, "User with this email already exists"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, httperr.KindUnauthenticated, "Invalid email or password"},
	{queries.ErrUnauthenticated, http.StatusUnauthorized, httperr.KindUnauthenticated, "Authentication required"},
	{queries.ErrUserNotFound, http.StatusNotFound, httperr.KindNotFound, "User not found"},
}

type AuthHandler struct {
	cmds      commands.AuthCommands
	q         queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		q:         q,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Sign up
// @Description Create an account and start a session
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if detail, err := reqdto.BindJSON(c, &req); err != nil {
		abortInvalidRequest(c, err, detail)
		return
	}

	result, err := h.cmds.Signup(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithMapped(c, err, authErrorMap)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.JSON(http.StatusCreated, resdto.FromAuthResult(result))
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if detail, err := reqdto.BindJSON(c, &req); err != nil {
		abortInvalidRequest(c, err, detail)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithMapped(c, err, authErrorMap)
		return
	}

	cookie.SetAccessToken(c, h.cookieCfg, result.Token, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.FromAuthResult(result))
}

// @Summary User logout
// @Description Clear the session cookie
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// Tokens are stateless; a Bearer token stays valid until it expires.
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithMapped(c, err, authErrorMap)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
