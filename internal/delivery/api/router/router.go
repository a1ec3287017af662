// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"todo/internal/delivery/api/middleware"
	"todo/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/google-login", r.authHandler.GoogleLogin)
		authGroup.POST("/reset-password", r.authHandler.ResetPassword)
		authGroup.POST("/verify-otp", r.authHandler.VerifyOtp)
		authGroup.POST("/change-password", r.authHandler.ChangePassword)

		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}
}
