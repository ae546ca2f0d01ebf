package api

import (
	"net/http"

	"fitstudio/internal/domain/user"
	reqdto "fitstudio/internal/handler/dto/request"
	resdto "fitstudio/internal/handler/dto/response"
	"fitstudio/internal/handler/httperr"
	"fitstudio/internal/handler/middleware"
	"fitstudio/internal/pkg/config"
	"fitstudio/internal/pkg/cookie"
	"fitstudio/internal/pkg/errs"
	"fitstudio/internal/pkg/jwt"
	"fitstudio/internal/usecase/commands"
	"fitstudio/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	cmds       commands.AuthCommands
	users      queries.UserQueries
	cookieCfg  config.CookieConfig
	jwtService *jwt.Service
}

func NewAuthHandler(cmds commands.AuthCommands, users queries.UserQueries, cfg config.Config, jwtService *jwt.Service) *AuthHandler {
	return &AuthHandler{
		cmds:       cmds,
		users:      users,
		cookieCfg:  cfg.Cookie,
		jwtService: jwtService,
	}
}

var registrationErrorMessages = []errorMapping{
	{user.ErrInvalidName, http.StatusBadRequest, "Name must be 2 to 50 characters"},
	{user.ErrInvalidEmail, http.StatusBadRequest, "Invalid email address"},
	{user.ErrInvalidPhone, http.StatusBadRequest, "Invalid phone number"},
	{user.ErrPasswordTooWeak, http.StatusBadRequest, "Password must be at least 8 characters"},
	{user.ErrInvalidSubscription, http.StatusBadRequest, "Invalid subscription type"},
	{commands.ErrEmailAlreadyExists, http.StatusConflict, "User with this email already exists"},
}

// @Summary Register
// @Description Create a member account and sign in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration"
// @Success 201 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msgInvalidRequest, nil)
		return
	}

	reg, err := req.ToDomain()
	if err != nil {
		abortWithMapped(c, err, registrationErrorMessages)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), reg)
	if err != nil {
		abortWithMapped(c, err, registrationErrorMessages)
		return
	}

	h.respondWithSession(c, http.StatusCreated, result)
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		}
		return
	}

	h.respondWithSession(c, http.StatusOK, result)
}

// @Summary Refresh tokens
// @Description Issue a new token pair from the refresh cookie or body
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest false "Refresh token"
// @Success 200 {object} resdto.RefreshResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := cookie.GetRefreshToken(c)
	if token == "" {
		var req reqdto.RefreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			token = req.RefreshToken
		}
	}
	if token == "" {
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthenticated, "Refresh token required", nil)
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrTokenValidation), errs.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
		case errs.Is(err, commands.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg, pair.AccessToken, pair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())
	c.JSON(http.StatusOK, resdto.RefreshResponse{AccessToken: pair.AccessToken})
}

// @Summary User logout
// @Description Clear the session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// tokens are stateless; clearing cookies is all the server can do
	cookie.ClearTokenCookies(c, h.cookieCfg)
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
		httperr.AbortWithError(c, http.StatusUnauthorized, httperr.ErrUnauthenticated, msgUnauthorized, nil)
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errs.Is(err, queries.ErrUserInactive):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Account is inactive", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		}
		return
	}

	res, err := resdto.FromUserView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternalError, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, result *commands.LoginResult) {
	cookie.SetTokenCookies(c, h.cookieCfg, result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtService.AccessTokenDuration(), h.jwtService.RefreshTokenDuration())

	res := resdto.LoginResponse{AccessToken: result.TokenPair.AccessToken}
	if u, err := h.loadUser(c, result.UserID); err == nil {
		res.User = u
	}
	c.JSON(status, res)
}

func (h *AuthHandler) loadUser(c *gin.Context, id uuid.UUID) (*resdto.UserResponse, error) {
	view, err := h.users.GetCurrentUser(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	return resdto.FromUserView(view)
}
