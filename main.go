package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kshitijtanwar/wealthwise/handlers"
	"github.com/kshitijtanwar/wealthwise/logger"
	"github.com/kshitijtanwar/wealthwise/middleware"
	"github.com/kshitijtanwar/wealthwise/mongodb"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}
}

func main() {
	development := os.Getenv("APP_ENV") != "production"
	if err := logger.Init(development, logger.LogLevel(os.Getenv("LOG_LEVEL"))); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	if err := mongodb.InitMongoDB(); err != nil {
		logger.Get().Fatal("failed to initialize MongoDB", zap.Error(err))
	}
	defer mongodb.CloseMongoDB()

	if !development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(middleware.CorsMiddleware)
	router.Use(middleware.RequestLogger)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", handlers.Signup)
			authRoutes.POST("/login", handlers.Login)
			authRoutes.POST("/logout", handlers.Logout)
			authRoutes.GET("/me", middleware.AuthMiddleware, handlers.Me)
		}

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware)
		{
			protected.GET("/expenses", handlers.GetExpenses)
			protected.POST("/expenses", handlers.AddExpense)
			protected.POST("/expenses/import", handlers.ImportExpenses)
			protected.GET("/expenses/export", handlers.ExportExpenses)

			protected.GET("/budgets", handlers.GetBudgets)
			protected.POST("/budgets", handlers.SetBudget)
			protected.PUT("/budgets/salary-breakdown", handlers.SetSalaryBreakdown)

			protected.GET("/goals", handlers.GetGoals)
			protected.POST("/goals", handlers.CreateGoal)
			protected.GET("/goals/:id", handlers.GetGoal)
			protected.PUT("/goals/:id", handlers.UpdateGoal)
			protected.DELETE("/goals/:id", handlers.DeleteGoal)

			protected.GET("/dashboard", handlers.GetDashboard)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Get().Info("server starting", zap.String("port", port))
	if err := router.Run(":" + port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}
