package main

import (
	"fmt"
	"net/http"
	"os"

	"alcancia/internal/charts"
	"alcancia/internal/config"
	"alcancia/internal/database"
	"alcancia/internal/email"
	"alcancia/internal/handlers"
	"alcancia/internal/logger"
	"alcancia/internal/middleware"
	"alcancia/internal/services"
	"alcancia/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "alcancia/internal/docs" // Import swagger docs
)

// @title           Alcancia API
// @version         1.0
// @description     Alcancia recommends budgeting templates from questionnaire answers, tracks income and expenses, and reports end-of-month deviations against the recommended budget.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	validator.Register()

	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	renderer, err := charts.NewPNGRenderer(appConfig.ChartDir)
	if err != nil {
		return fmt.Errorf("failed to initialize chart renderer: %w", err)
	}
	mailer := email.NewSMTPMailer(appConfig)

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	verificationService := services.NewVerificationService(db, mailer)
	questionnaireService := services.NewQuestionnaireService(db)
	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db, renderer)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	questionnaireHandler := handlers.NewQuestionnaireHandler(questionnaireService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Verification routes
	verification := protected.Group("/verification")
	verification.POST("/request", verificationHandler.RequestCode)
	verification.POST("/confirm", verificationHandler.ConfirmCode)

	// Questionnaire routes
	questionnaires := protected.Group("/questionnaires")
	questionnaires.POST("", questionnaireHandler.CreateQuestionnaire)
	questionnaires.GET("", questionnaireHandler.GetQuestionnaires)
	questionnaires.GET("/:id", questionnaireHandler.GetQuestionnaire)
	questionnaires.POST("/:id/log", questionnaireHandler.AddLogEntry)
	questionnaires.POST("/:id/sync", questionnaireHandler.SyncLog)
	questionnaires.DELETE("/:id", questionnaireHandler.DeleteQuestionnaire)

	// Transaction routes
	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Budget routes
	budgets := protected.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.POST("/:id/sync", budgetHandler.SyncBudget)
	budgets.POST("/:id/report", budgetHandler.GenerateReport)
	budgets.GET("/:id/report/export", budgetHandler.ExportReport)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	log.Infof("Starting Alcancia backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
