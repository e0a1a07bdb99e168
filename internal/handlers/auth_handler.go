package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/college/skillbridge/internal/middleware"
	"github.com/college/skillbridge/internal/models"
	"github.com/college/skillbridge/internal/services"
	"github.com/college/skillbridge/internal/services/dto"
	"github.com/college/skillbridge/pkg/apperrors"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cookies     *CookieWriter
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cookies *CookieWriter) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cookies:     cookies,
	}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/admin/register", h.registerAs(models.RoleAdmin))
		auth.POST("/student/register", h.registerAs(models.RoleStudent))
		auth.POST("/trainer/register", h.registerAs(models.RoleTrainer))
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", authRequired, h.Me)
	}
}

// Register creates the account and signs the caller in, attaching the fresh
// token pair as cookies the same way Login does.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken,
		h.authService.AccessTTL(), h.authService.RefreshTTL())
	resp.AccessToken = ""
	resp.RefreshToken = ""

	c.JSON(http.StatusCreated, resp)
}

// registerAs serves the role-specific registration endpoints. The role comes
// from the route, so the body's role field is ignored.
func (h *AuthHandler) registerAs(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
			return
		}
		req.Role = string(role)
		if err := h.validator.Validate(&req); err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError(err.Error()))
			return
		}

		resp, err := h.authService.Register(&req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}

		h.cookies.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken,
			h.authService.AccessTTL(), h.authService.RefreshTTL())
		resp.AccessToken = ""
		resp.RefreshToken = ""

		c.JSON(http.StatusCreated, resp)
	}
}

// Login attaches the token pair as HttpOnly cookies and strips the raw
// values from the response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken,
		h.authService.AccessTTL(), h.authService.RefreshTTL())
	resp.AccessToken = ""
	resp.RefreshToken = ""

	c.JSON(http.StatusOK, resp)
}

// Refresh rotates the pair using the refresh cookie alone. The request body
// is ignored; a token in the body is never accepted.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(h.cookies.RefreshCookieName())
	if err != nil || refreshToken == "" {
		h.HandleServiceError(c, apperrors.ErrInvalidToken)
		return
	}

	resp, err := h.authService.Refresh(refreshToken)
	if err != nil {
		h.cookies.ClearAuthCookies(c)
		h.HandleServiceError(c, err)
		return
	}

	h.cookies.SetAuthCookies(c, resp.AccessToken, resp.RefreshToken,
		h.authService.AccessTTL(), h.authService.RefreshTTL())
	resp.AccessToken = ""
	resp.RefreshToken = ""

	c.JSON(http.StatusOK, resp)
}

// Logout retires the refresh token and expires both cookies. Safe to call
// without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, _ := c.Cookie(h.cookies.RefreshCookieName())

	if err := h.authService.Logout(refreshToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.cookies.ClearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	email := middleware.GetUserEmail(c)
	if email == "" {
		h.HandleServiceError(c, apperrors.NewUnauthorizedError("Not authenticated"))
		return
	}

	user, err := h.authService.GetCurrentUser(email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
