package controller

import (
	"edu_tracker_backend/internal/config"
	"edu_tracker_backend/internal/service"
	"edu_tracker_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
	Cfg         *config.Config
}

func NewAuthController(authService *service.AuthService, userService *service.UserService, cfg *config.Config) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
		Cfg:         cfg,
	}
}

// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen. With dev auth enabled the redirect is skipped and a mock session is issued directly.
// @Tags auth
// @Produce json
// @Success 307
// @Router /api/auth/google [get]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	if c.Cfg.OAuth.UseDevAuth {
		c.DevLogin(ctx)
		return
	}

	redirectURI := ctx.Query("redirect_uri")
	if redirectURI == "" {
		redirectURI = c.callbackURL(ctx)
	}
	ctx.Redirect(http.StatusTemporaryRedirect, c.AuthService.AuthorizeURL(redirectURI))
}

// @Summary Google sign-in callback
// @Description Exchanges the authorization code and issues the session token.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Success 200 {object} util.Response
// @Router /api/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	code := ctx.Query("code")
	if code == "" {
		util.BadRequest(ctx, "Missing authorization code")
		return
	}

	redirectURI := ctx.Query("redirect_uri")
	if redirectURI == "" {
		redirectURI = c.callbackURL(ctx)
	}

	token, user, err := c.AuthService.HandleCallback(ctx.Request.Context(), code, redirectURI)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// @Summary Development sign-in
// @Description Issues a session for a fixed mock identity. Disabled outside dev auth mode.
// @Tags auth
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/auth/dev [post]
func (c *AuthController) DevLogin(ctx *gin.Context) {
	if !c.Cfg.OAuth.UseDevAuth {
		util.Forbidden(ctx)
		return
	}

	token, user, err := c.AuthService.DevLogin()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// @Summary Current user
// @Description Returns the signed-in user's profile.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetByID(claims.UserID)
	if err != nil {
		if err == util.ErrUserNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// @Summary Sign out
// @Description Revokes the current session token until its natural expiry.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "Logged out"})
}

func (c *AuthController) callbackURL(ctx *gin.Context) string {
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + ctx.Request.Host + "/api/auth/google/callback"
}
