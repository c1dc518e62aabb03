package api

import (
	"errors"
	"net/http"

	reqdto "villa-booking/internal/handler/dto/request"
	resdto "villa-booking/internal/handler/dto/response"
	"villa-booking/internal/handler/httperr"
	"villa-booking/internal/handler/middleware"
	"villa-booking/internal/pkg/config"
	"villa-booking/internal/pkg/cookie"
	"villa-booking/internal/usecase/commands"
	"villa-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNotAuthenticated = errors.New("user not authenticated")

type AuthHandler struct {
	commands  commands.AuthCommands
	queries   queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		commands:  authCommands,
		queries:   userQueries,
		cookieCfg: cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Login with username or email. The token is set as the admin-token cookie and returned in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithBindError(c, err, "Invalid request format")
		return
	}

	result, err := h.commands.Login(c.Request.Context(), req)
	if err != nil {
		abortWithUsecaseError(c, err, "Internal server error")
		return
	}

	cookie.SetAdminToken(c, h.cookieCfg, result.Token, result.ExpiresAt)
	c.JSON(http.StatusOK, resdto.FromLoginResult(result))
}

// @Summary Admin logout
// @Description Clears the admin-token cookie.
// @Tags auth
// @Security CookieAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /admin/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Tags auth
// @Security CookieAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNotAuthenticated, "User not authenticated", nil)
		return
	}

	user, err := h.queries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(user))
}
