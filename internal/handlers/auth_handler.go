package handlers

import (
	"net/http"
	"time"

	"weddinghub_backend/internal/middleware"
	"weddinghub_backend/internal/services"
	"weddinghub_backend/internal/services/dto"
	"weddinghub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/refresh", middleware.AuthMiddleware(), h.Refresh)
		auth.GET("/me", middleware.AuthMiddleware(), h.Me)
		auth.POST("/logout", h.Logout)
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("email and password are required"))
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// Refresh re-issues the session with a fresh vendor snapshot, repairing
// claims that went stale after an admin decision.
func (h *AuthHandler) Refresh(c *gin.Context) {
	userID, ok := userIDFromSession(c)
	if !ok {
		return
	}

	resp, err := h.authService.RefreshSession(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}

	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := userIDFromSession(c)
	if !ok {
		return
	}

	user, err := h.authService.Me(userID)
	if err != nil {
		apperrors.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token,
		int(30*24*time.Hour/time.Second), "/", "", false, true)
}
