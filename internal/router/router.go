package router

import (
	"time"

	"cinos/internal/auth"
	"cinos/internal/metrics"
	"cinos/internal/middleware"
	"cinos/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New assembles the full API surface. Metrics are optional so tests
// can build the router without touching the global prometheus
// registry.
func New(
	authHandler *auth.Handler,
	orderHandler *order.Handler,
	m *metrics.ServerMetrics,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", metrics.Handler())
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public catalog and read-side routes
	r.GET("/sizes", orderHandler.ListSizes())
	r.GET("/orders/:id", orderHandler.GetOrder())
	r.GET("/orders/:id/total", orderHandler.GetTotal())
	r.GET("/orders/:id/receipt", orderHandler.GetReceipt())

	// Auth routes
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register())
		authGroup.POST("/login", authHandler.Login())
	}

	// Order mutation requires a logged-in staff member
	staff := r.Group("/orders")
	staff.Use(middleware.AuthMiddleware())
	staff.Use(middleware.RequireRole(auth.RoleBarista, auth.RoleAdmin))
	{
		staff.POST("", orderHandler.CreateOrder())
		staff.POST("/:id/drinks", orderHandler.AddDrink())
		staff.PATCH("/:id/drinks/:index/size", orderHandler.ChangeDrinkSize())
	}

	// Receipt archival is admin-only
	admin := r.Group("/orders")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRole(auth.RoleAdmin))
	{
		admin.POST("/:id/archive", orderHandler.ArchiveReceipt())
	}

	return r
}
