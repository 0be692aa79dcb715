package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/lms-api/internal/config"
	"github.com/yourusername/lms-api/internal/handler"
	"github.com/yourusername/lms-api/internal/middleware"
	pgRepo "github.com/yourusername/lms-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/lms-api/internal/repository/redis"
	"github.com/yourusername/lms-api/internal/service"
	"github.com/yourusername/lms-api/pkg/auth"
	"github.com/yourusername/lms-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	testRepo := pgRepo.NewTestRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	standupRepo := pgRepo.NewStandupNoteRepo(db)
	trainingRepo := pgRepo.NewStudentTrainingRepo(db)
	contentRepo := pgRepo.NewCourseContentRepo(db)
	reportRepo := pgRepo.NewReportRepo(db)
	userRepo := pgRepo.NewUserRepo(db)

	cacheRepo, err := redisRepo.NewCacheRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize CacheRepo: %v", err)
		os.Exit(1)
	}

	// Инициализируем JWT сервис
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationHrs)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	testService := service.NewTestService(testRepo, questionRepo, cacheRepo)
	standupService := service.NewStandupService(standupRepo, userRepo)
	trainingService := service.NewStudentTrainingService(trainingRepo)
	contentService := service.NewCourseContentService(contentRepo)
	reportService := service.NewReportService(reportRepo)

	// Инициализируем обработчики
	testHandler := handler.NewTestHandler(testService, cfg.Uploads.Dir)
	standupHandler := handler.NewStandupHandler(standupService)
	trainingHandler := handler.NewStudentTrainingHandler(trainingService)
	contentHandler := handler.NewCourseContentHandler(contentService)
	reportHandler := handler.NewReportHandler(reportService)

	// Инициализируем middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// Инициализируем роутер Gin
	router := gin.Default()

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Каталог тестов и банк вопросов
		tests := api.Group("/test-master")
		tests.Use(authMiddleware.RequireAuth())
		{
			tests.POST("", testHandler.CreateTest)
			tests.GET("", testHandler.ListTests)

			testWithID := tests.Group("/:test_id")
			testWithID.Use(middleware.ExtractUintParam("test_id", "testID"))
			{
				testWithID.PUT("", testHandler.UpdateTest)
				testWithID.GET("", testHandler.GetQuestions)
			}
		}

		// Standup-заметки
		standups := api.Group("/standup-notes")
		standups.Use(authMiddleware.RequireAuth())
		{
			standups.GET("", standupHandler.ListNotes)
			standups.GET("/weekly", authMiddleware.AdminOnly(), standupHandler.WeeklyOverview)
			standups.POST("", standupHandler.CreateNote)

			noteWithID := standups.Group("/:id")
			noteWithID.Use(middleware.ExtractUintParam("id", "noteID"))
			{
				noteWithID.GET("", standupHandler.GetNote)
				noteWithID.PUT("", standupHandler.UpdateNote)
				noteWithID.DELETE("", standupHandler.DeleteNote)
			}
		}

		// Привязка студентов к программам обучения
		trainings := api.Group("/student-trainings")
		trainings.Use(authMiddleware.RequireAuth())
		{
			trainings.POST("", trainingHandler.ApplyMapping)

			status := trainings.Group("/:company_id/:training_id")
			status.Use(
				middleware.ExtractUintParam("company_id", "companyID"),
				middleware.ExtractUintParam("training_id", "trainingID"),
			)
			{
				status.GET("", trainingHandler.MappingStatus)
			}
		}

		// Учебный план
		content := api.Group("/course-content")
		{
			content.POST("", contentHandler.CreateContent)
			content.GET("", contentHandler.ListContent)

			contentWithID := content.Group("/:id")
			contentWithID.Use(middleware.ExtractUintParam("id", "contentID"))
			{
				contentWithID.PUT("", contentHandler.UpdateContent)
				contentWithID.DELETE("", contentHandler.DeleteContent)
			}
		}

		// Отчеты по баллам
		api.POST("/reports", reportHandler.Scores)
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Server started on port %s", cfg.Server.Port)

	// Ждем сигнала остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Контекст с таймаутом для graceful shutdown сервера
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Server exited properly")
}
