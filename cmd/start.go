/*
Copyright © 2025 gestorhq
*/
package cmd

import (
	"context"
	"log"

	"github.com/gestorhq/gestor-be/config"
	"github.com/gestorhq/gestor-be/database"
	"github.com/gestorhq/gestor-be/handler"
	"github.com/gestorhq/gestor-be/middleware"
	"github.com/gestorhq/gestor-be/repository"
	"github.com/gestorhq/gestor-be/service"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

// startServerCmd represents the startServer command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Starts the server that handles document extraction and project management requests`,
	Run: func(cmd *cobra.Command, args []string) {

		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		mongoClient, err := database.NewMongoClient(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database("gestor")

		//init repo
		userRepo := repository.NewUserRepo(mongoDb.Collection("users"))
		projectRepo := repository.NewProjectRepo(mongoDb.Collection("projects"))
		taskRepo := repository.NewTaskRepo(mongoDb.Collection("tasks"))
		timelineRepo := repository.NewTimelineRepo(mongoDb.Collection("timeline"))

		//init service
		userService := service.NewUserService(userRepo)
		fallback := service.NewFallbackAnalyzer()

		var aiService service.AIService
		switch cfg.AIProvider {
		case "gemini":
			aiService, err = service.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.Model, fallback)
			if err != nil {
				log.Fatalf("Failed to init Gemini client: %v", err)
			}
		default:
			aiService = service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model, fallback)
		}

		integrationService := service.NewIntegrationService(projectRepo, taskRepo, timelineRepo)
		wsService := service.NewWebSocketService(integrationService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		documentHandler := handler.NewDocumentHandler(aiService, cfg.Production())
		integrationHandler := handler.NewIntegrationHandler(integrationService)
		projectHandler := handler.NewProjectHandler(projectRepo)
		taskHandler := handler.NewTaskHandler(taskRepo)
		timelineHandler := handler.NewTimelineHandler(timelineRepo)
		loginHandler := handler.NewLoginHandler(userService)
		userHandler := handler.NewUserHandler(userService)

		// Setup Gin router
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		// API v1 routes
		apiV1 := router.Group("/api/v1")
		apiV1.POST("/login", loginHandler.HandleLogin)
		apiV1.GET("/status", documentHandler.HandleStatus(cfg.Env))

		// Protected user routes
		userRoutes := apiV1.Group("/")
		userRoutes.Use(middleware.AuthMiddleware)
		{
			userRoutes.POST("/documents/process", documentHandler.HandleProcessDocument)
			userRoutes.POST("/documents/integrate", integrationHandler.HandleIntegrate)
			userRoutes.GET("/ws/integrate", func(c *gin.Context) {
				wsService.HandleIntegration(c.Writer, c.Request)
			})
			userRoutes.POST("/projects", projectHandler.HandleCreateProject)
			userRoutes.GET("/projects", projectHandler.HandleListProjects)
			userRoutes.POST("/tasks", taskHandler.HandleCreateTask)
			userRoutes.GET("/tasks", taskHandler.HandleListTasks)
			userRoutes.POST("/timeline", timelineHandler.HandleCreateEvent)
			userRoutes.GET("/timeline", timelineHandler.HandleListEvents)
			userRoutes.POST("/users/create", userHandler.HandleCreateUser)
			userRoutes.GET("/users", userHandler.HandleListTeamUsers)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}
