package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"project-task-api/internal/client"
	"project-task-api/internal/config"
	"project-task-api/internal/handler"
	"project-task-api/internal/metrics"
	"project-task-api/internal/middleware"
	"project-task-api/internal/repository"
	"project-task-api/internal/service"
)

// Config holds router configuration
type Config struct {
	DB          *gorm.DB
	RedisClient *redis.Client
	Logger      *zap.Logger
	JWT         *config.JWTConfig
	BasePath    string
	S3Client    client.S3ClientInterface
	Metrics     *metrics.Metrics
}

// Setup sets up the router with all routes
func Setup(cfg Config) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}

	// Health check endpoints
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "service": "task-service"})
	}
	readyHandler := func(c *gin.Context) {
		if cfg.DB == nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "task-service"})
			return
		}
		sqlDB, err := cfg.DB.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "task-service"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "not ready", "service": "task-service"})
			return
		}
		c.JSON(200, gin.H{"status": "ready", "service": "task-service"})
	}

	// Prometheus metrics endpoint (always at root for scraping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", healthHandler)
	r.GET("/ready", readyHandler)

	// Initialize repositories
	userRepo := repository.NewUserRepository(cfg.DB)
	departmentRepo := repository.NewDepartmentRepository(cfg.DB)
	projectRepo := repository.NewProjectRepository(cfg.DB)
	groupRepo := repository.NewGroupRepository(cfg.DB)
	taskRepo := repository.NewTaskRepository(cfg.DB)
	meetingRepo := repository.NewMeetingRepository(cfg.DB)
	attachmentRepo := repository.NewAttachmentRepository(cfg.DB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.JWT, cfg.Logger)
	adminService := service.NewAdminService(userRepo, departmentRepo, cfg.Logger)
	attachmentService := service.NewAttachmentService(attachmentRepo, cfg.S3Client, cfg.Logger)
	projectService := service.NewProjectService(projectRepo, groupRepo, userRepo, attachmentService, cfg.Metrics, cfg.Logger)
	groupService := service.NewGroupService(groupRepo, taskRepo, projectRepo, cfg.Logger)
	taskService := service.NewTaskService(taskRepo, groupRepo, projectRepo, attachmentService, cfg.Metrics, cfg.Logger)
	boardService := service.NewBoardService(taskRepo, groupRepo, projectRepo, cfg.Logger)
	myWorkService := service.NewMyWorkService(projectRepo, taskRepo, userRepo, cfg.Logger)
	meetingService := service.NewMeetingService(meetingRepo, projectRepo, attachmentService, cfg.RedisClient, cfg.Metrics, cfg.Logger)
	seedService := service.NewSeedService(departmentRepo, projectRepo, groupRepo, taskRepo, meetingRepo, cfg.Logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService, seedService)
	projectHandler := handler.NewProjectHandler(projectService)
	groupHandler := handler.NewGroupHandler(groupService)
	taskHandler := handler.NewTaskHandler(taskService)
	boardHandler := handler.NewBoardHandler(boardService, myWorkService)
	meetingHandler := handler.NewMeetingHandler(meetingService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)

	// API routes group
	api := r.Group(cfg.BasePath)

	// Health/metrics also reachable under the base path (ingress stripping varies per env)
	if cfg.BasePath != "" {
		api.GET("/metrics", gin.WrapH(promhttp.Handler()))
		api.GET("/health", healthHandler)
		api.GET("/ready", readyHandler)
	}

	// Swagger documentation
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authMiddleware := middleware.Auth(cfg.JWT.Secret)

	// ============================================================
	// Auth routes (public)
	// ============================================================
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/me", authMiddleware, authHandler.Me)
		auth.POST("/logout", authMiddleware, authHandler.Logout)
	}

	// ============================================================
	// Admin routes
	// ============================================================
	admin := api.Group("/admin")
	admin.Use(authMiddleware, middleware.AdminOnly())
	{
		admin.GET("/users/pending", adminHandler.GetPendingUsers)
		admin.POST("/users/decision", adminHandler.DecideUser)
		admin.GET("/departments", adminHandler.GetDepartments)
		admin.POST("/departments", adminHandler.CreateDepartment)
		admin.DELETE("/departments/:departmentId", adminHandler.DeleteDepartment)
		admin.POST("/seed", adminHandler.SeedDemoData)
	}

	// ============================================================
	// Project routes
	// ============================================================
	projects := api.Group("/projects")
	projects.Use(authMiddleware)
	{
		projects.POST("", projectHandler.CreateProject)
		projects.GET("", projectHandler.GetProjects)
		projects.GET("/:projectId", projectHandler.GetProject)
		projects.PUT("/:projectId", projectHandler.UpdateProject)
		projects.DELETE("/:projectId", projectHandler.DeleteProject)

		// Project members
		projects.POST("/:projectId/members", projectHandler.AddMember)
		projects.GET("/:projectId/members", projectHandler.GetMembers)
		projects.PUT("/:projectId/members/:memberId/role", projectHandler.UpdateMemberRole)
		projects.DELETE("/:projectId/members/:memberId", projectHandler.RemoveMember)

		// Groups
		projects.GET("/:projectId/groups", groupHandler.GetGroups)
		projects.POST("/:projectId/groups", groupHandler.CreateGroup)
		projects.DELETE("/:projectId/groups/:groupId", groupHandler.DeleteGroup)

		// Tasks scoped to a project
		projects.GET("/:projectId/tasks", taskHandler.GetTasksByProject)

		// Board views
		projects.GET("/:projectId/board", boardHandler.GetBoardView)
		projects.GET("/:projectId/board/groups", boardHandler.GetGroupSummaries)

		// Meetings scoped to a project
		projects.GET("/:projectId/meetings", meetingHandler.GetMeetingsByProject)
	}

	// ============================================================
	// Task routes
	// ============================================================
	tasks := api.Group("/tasks")
	tasks.Use(authMiddleware)
	{
		tasks.POST("", taskHandler.CreateTask)
		tasks.GET("/:taskId", taskHandler.GetTask)
		tasks.PATCH("/:taskId", taskHandler.UpdateTask)
		tasks.DELETE("/:taskId", taskHandler.DeleteTask)
	}

	// ============================================================
	// My work
	// ============================================================
	api.GET("/my-work", authMiddleware, boardHandler.GetMyWork)

	// ============================================================
	// Meeting routes
	// ============================================================
	meetings := api.Group("/meetings")
	meetings.Use(authMiddleware)
	{
		meetings.POST("", meetingHandler.CreateMeeting)
		meetings.GET("/:meetingId", meetingHandler.GetMeeting)
		meetings.PUT("/:meetingId", meetingHandler.UpdateMeeting)
		meetings.DELETE("/:meetingId", meetingHandler.DeleteMeeting)
		meetings.POST("/:meetingId/process", meetingHandler.ProcessMeeting)
	}

	// ============================================================
	// Attachment routes
	// ============================================================
	attachments := api.Group("/attachments")
	attachments.Use(authMiddleware)
	{
		attachments.POST("/presigned-url", attachmentHandler.GeneratePresignedURL)
		attachments.POST("/metadata", attachmentHandler.SaveMetadata)
		attachments.GET("", attachmentHandler.GetAttachmentsByEntity)
		attachments.GET("/:attachmentId/download-url", attachmentHandler.GetDownloadURL)
		attachments.DELETE("/:attachmentId", attachmentHandler.DeleteAttachment)
	}

	return r
}
