// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"fittrack/internal/delivery/http/middleware"
	"fittrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths mirror the account surface the frontend already calls.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	users := e.Group("/api/users")
	{
		// Only the current-account read requires an authenticated
		// session; the administrative paths carry no extra guard here.
		users.GET("", r.accountHandler.GetCurrent, r.authMiddleware.Authenticate)

		users.POST("/signup", r.accountHandler.SignUp)
		users.POST("/login", r.accountHandler.Login)
		users.POST("/logout", r.accountHandler.Logout)
		users.POST("/account-recovery", r.accountHandler.Recover)
		users.POST("/admin-search", r.accountHandler.AdminSearch)
		users.POST("/edit-user", r.accountHandler.Edit)
		users.POST("/delete-user", r.accountHandler.Delete)
	}
}
