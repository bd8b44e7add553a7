// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/payment-system/backend/internal/integration/entrypoint/controller"
	"github.com/payment-system/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine            *gin.Engine
	healthController  *controller.HealthController
	userController    *controller.UserController
	paymentController *controller.PaymentController
	writeRateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	userController *controller.UserController,
	paymentController *controller.PaymentController,
	writeRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:  healthController,
		userController:    userController,
		paymentController: paymentController,
		writeRateLimiter:  writeRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Write endpoints go
// through the rate limiter when one is configured.
func (r *Router) setupAPIRoutes() {
	limited := func() gin.HandlerFunc {
		if r.writeRateLimiter != nil {
			return r.writeRateLimiter.Middleware()
		}
		return func(c *gin.Context) { c.Next() }
	}

	v1 := r.engine.Group("/api/v1")
	{
		if r.userController != nil {
			users := v1.Group("/users")
			{
				users.POST("", limited(), r.userController.Register)
				users.GET("", r.userController.List)
				users.GET("/search", r.userController.Search)
				users.GET("/by-email", r.userController.GetByEmail)
				users.GET("/:id", r.userController.Get)
				users.PUT("/:id", limited(), r.userController.Update)
				users.POST("/:id/deactivate", limited(), r.userController.Deactivate)
				users.DELETE("/:id", limited(), r.userController.Delete)
			}
		}

		if r.paymentController != nil {
			payments := v1.Group("/payments")
			{
				payments.POST("", limited(), r.paymentController.Create)
				payments.GET("", r.paymentController.List)
				payments.GET("/count", r.paymentController.CountByStatus)
				payments.GET("/statistics/by-category", r.paymentController.Statistics)
				payments.GET("/totals/by-user/:id", r.paymentController.TotalByUser)
				payments.GET("/:id", r.paymentController.Get)
				payments.PATCH("/:id/status", limited(), r.paymentController.UpdateStatus)
				payments.POST("/:id/cancel", limited(), r.paymentController.Cancel)
			}
		}
	}
}
