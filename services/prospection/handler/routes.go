package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/prospecta/backend/internal/pkg/middleware"
	"github.com/prospecta/backend/internal/pkg/models"
	"github.com/prospecta/backend/services/prospection/handler/http"
)

// Handler coordinates the HTTP handlers for the prospection service
type Handler struct {
	authHandler    *http.AuthHandler
	profileHandler *http.ProfileHandler
	adminHandler   *http.AdminHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	profileHandler *http.ProfileHandler,
	adminHandler *http.AdminHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		adminHandler:   adminHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers all routes on the Echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	authGroup := e.Group("/auth")
	authGroup.POST("/request-otp", h.authHandler.RequestOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)

	// Salesperson routes; the phone comes from the token, never the client
	profileGroup := e.Group("/profile", middleware.JWTAuthMiddleware(h.cfg.JWT))
	profileGroup.GET("", h.profileHandler.GetProfile)
	profileGroup.POST("", h.profileHandler.SaveProfile)

	// Admin routes; login is public, everything else requires an admin token
	adminGroup := e.Group("/admin")
	adminGroup.POST("/login", h.authHandler.AdminLogin)

	adminProtected := adminGroup.Group("", middleware.AdminAuthMiddleware(h.cfg.JWT))
	adminProtected.GET("/users", h.adminHandler.ListUsers)
	adminProtected.GET("/users/:phone", h.adminHandler.GetUser)
	adminProtected.POST("/users", h.adminHandler.CreateUser)
	adminProtected.PUT("/users/:phone", h.adminHandler.UpdateUser)
	adminProtected.DELETE("/users/:phone", h.adminHandler.DeleteUser)
	adminProtected.GET("/metrics", h.adminHandler.GetMetrics)
}
