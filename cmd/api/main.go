package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"github.com/gradeup-ai/gradeup-mvp/internal/config"
	"github.com/gradeup-ai/gradeup-mvp/internal/handlers"
	"github.com/gradeup-ai/gradeup-mvp/internal/middleware"
	"github.com/gradeup-ai/gradeup-mvp/internal/repositories"
	"github.com/gradeup-ai/gradeup-mvp/internal/services"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{
		FieldMap: log.FieldMap{
			log.FieldKeyTime: "@timestamp",
			log.FieldKeyMsg:  "message",
		},
	})

	// Load configuration
	cfg := config.Load()
	if cfg.Server.Env == "development" {
		log.SetLevel(log.DebugLevel)
	}

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}

	// Initialize repositories
	companyRepo := repositories.NewCompanyRepository(db)
	candidateRepo := repositories.NewCandidateRepository(db)
	vacancyRepo := repositories.NewVacancyRepository(db)
	interviewRepo := repositories.NewInterviewRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)

	// Initialize services
	passwordService := services.NewPasswordService()
	tokenService := services.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.EnforceExpiry)
	authService := services.NewAuthService(companyRepo, candidateRepo, passwordService, tokenService, cfg.Auth.UniqueEmailScope)

	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.WithError(err).Fatal("failed to create upload directory")
	}
	resumeParser := services.NewResumeParserService()

	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize gemini client")
	}

	qdrantService, err := services.NewQdrantService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize qdrant client")
	}
	if err := qdrantService.InitCollection(); err != nil {
		log.WithError(err).Fatal("failed to initialize qdrant collection")
	}

	speechService := services.NewSpeechService(cfg.Speech)
	roomService := services.NewRoomService(cfg.Rooms)
	matcherService := services.NewMatcherService(candidateRepo, geminiService, qdrantService)

	interviewerService := services.NewInterviewerService(
		interviewRepo,
		candidateRepo,
		vacancyRepo,
		geminiService,
		roomService,
		cfg.Worker.RetryMaxAttempts,
	)

	// Initialize worker
	worker := services.NewWorker(interviewRepo, interviewerService, cfg.Worker.Concurrency)
	worker.Start(context.Background())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	candidateHandler := handlers.NewCandidateHandler(candidateRepo, resumeRepo, storageService, resumeParser, cfg.Storage.MaxFileSize)
	vacancyHandler := handlers.NewVacancyHandler(vacancyRepo, matcherService)
	speechHandler := handlers.NewSpeechHandler(speechService)
	interviewHandler := handlers.NewInterviewHandler(interviewRepo, interviewerService, worker)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Gradeup API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: handlers.NewErrorHandler(cfg.Server.DebugErrors),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Gradeup MVP API",
			"version": "1.0.0",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth
	app.Post("/register_company", authHandler.HandleRegisterCompany)
	app.Post("/register_candidate", authHandler.HandleRegisterCandidate)
	app.Post("/login", authHandler.HandleLogin)
	app.Get("/protected", middleware.AuthorizationRequired(cfg.Auth, tokenService), authHandler.HandleProtected)

	// Companies
	app.Get("/companies", companyHandler.HandleList)
	app.Get("/company/:id", companyHandler.HandleGet)
	app.Put("/update_company/:id", companyHandler.HandleUpdate)
	app.Delete("/delete_company/:id", companyHandler.HandleDelete)

	// Candidates
	app.Get("/candidates", candidateHandler.HandleList)
	app.Get("/candidate/:id", candidateHandler.HandleGet)
	app.Post("/upload_resume/:id", candidateHandler.HandleUploadResume)

	// Vacancies
	app.Post("/create_vacancy", vacancyHandler.HandleCreate)
	app.Get("/vacancies", vacancyHandler.HandleList)
	app.Get("/vacancy/:id", vacancyHandler.HandleGet)
	app.Put("/update_vacancy/:id", vacancyHandler.HandleUpdate)
	app.Delete("/delete_vacancy/:id", vacancyHandler.HandleDelete)
	app.Post("/match_vacancies", vacancyHandler.HandleMatch)

	// Speech proxies
	app.Post("/generate_speech", speechHandler.HandleGenerateSpeech)
	app.Post("/transcribe_audio", speechHandler.HandleTranscribeAudio)

	// AI HR interview
	app.Post("/ai_hr_interview", interviewHandler.HandleStart)
	app.Post("/generate_question", interviewHandler.HandleGenerateQuestion)
	app.Post("/finish_interview/:id", interviewHandler.HandleFinish)
	app.Get("/interview_result/:id", interviewHandler.HandleGetResult)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("server forced to shutdown")
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.WithField("addr", addr).Info("server starting")

	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
