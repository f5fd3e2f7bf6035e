// Package router assembles the HTTP surface: middleware chain, public and
// protected route groups, the internal maintenance group, swagger and the
// liveness probe.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"finhealth/internal/engine"
	"finhealth/internal/handlers"
	"finhealth/internal/middleware"
	"finhealth/internal/services"

	_ "finhealth/internal/docs" // swagger docs
)

// Services is every service the routes depend on.
type Services struct {
	User      services.UserServicer
	Token     services.TokenServicer
	Expense   services.ExpenseServicer
	Asset     services.AssetServicer
	Liability services.LiabilityServicer
	Goal      services.GoalServicer
	Health    services.HealthServicer
	Export    services.ExportServicer
	Audit     services.AuditServicer
}

// NewServices wires the GORM-backed services sharing one snapshot cache.
func NewServices(db *gorm.DB, eng *engine.Engine, cache *services.SnapshotCache) *Services {
	health := services.NewHealthService(db, eng, cache)
	return &Services{
		User:      services.NewUserService(db, cache),
		Token:     services.NewTokenService(db),
		Expense:   services.NewExpenseService(db, cache),
		Asset:     services.NewAssetService(db, cache),
		Liability: services.NewLiabilityService(db, cache),
		Goal:      services.NewGoalService(db, cache),
		Health:    health,
		Export:    services.NewExportService(db, health),
		Audit:     services.NewAuditService(db),
	}
}

// Options tunes the router.
type Options struct {
	// ServiceAPIKey guards /api/v1/internal. Empty disables the group.
	ServiceAPIKey string
}

// New builds the Gin engine.
func New(s *Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(s.User, s.Token, s.Audit)
	expenseHandler := handlers.NewExpenseHandler(s.Expense, s.Audit)
	assetHandler := handlers.NewAssetHandler(s.Asset, s.Audit)
	liabilityHandler := handlers.NewLiabilityHandler(s.Liability, s.Audit)
	goalHandler := handlers.NewGoalHandler(s.Goal, s.Audit)
	dashboardHandler := handlers.NewDashboardHandler(s.Health)
	exportHandler := handlers.NewExportHandler(s.Export, s.Audit)
	maintenanceHandler := handlers.NewMaintenanceHandler(s.Token)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(s.Token))

	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/profile", authHandler.GetProfile)
	protected.POST("/onboard", authHandler.Onboard)

	protected.GET("/data", dashboardHandler.GetData)
	protected.GET("/health-snapshot", dashboardHandler.GetHealthSnapshot)
	protected.GET("/export", exportHandler.Export)

	expenses := protected.Group("/expenses")
	expenses.POST("", expenseHandler.CreateExpense)
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)

	assets := protected.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.GetAssets)
	assets.DELETE("/:id", assetHandler.DeleteAsset)

	liabilities := protected.Group("/liabilities")
	liabilities.POST("", liabilityHandler.CreateLiability)
	liabilities.GET("", liabilityHandler.GetLiabilities)
	liabilities.DELETE("/:id", liabilityHandler.DeleteLiability)

	goals := protected.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	// Internal routes for trusted callers
	internal := v1.Group("/internal")
	internal.Use(middleware.ServiceKeyMiddleware(opts.ServiceAPIKey))
	internal.POST("/revoked-tokens/purge", maintenanceHandler.PurgeRevokedTokens)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
