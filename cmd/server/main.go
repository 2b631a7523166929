package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	config "github.com/maheshrc27/content-planner/configs"
	"github.com/maheshrc27/content-planner/internal/api/handlers"
	"github.com/maheshrc27/content-planner/internal/api/middleware"
	"github.com/maheshrc27/content-planner/internal/cache"
	"github.com/maheshrc27/content-planner/internal/database"
	job "github.com/maheshrc27/content-planner/internal/jobs"
	"github.com/maheshrc27/content-planner/internal/logger"
	"github.com/maheshrc27/content-planner/internal/metrics"
	"github.com/maheshrc27/content-planner/internal/queue"
	"github.com/maheshrc27/content-planner/internal/repository"
	"github.com/maheshrc27/content-planner/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	logger.SetupDefault(os.Stdout, cfg.LogLevel)

	db, err := database.Connect(cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	redisClient, err := cache.Connect(cfg.RedisURI)
	if err != nil {
		slog.Warn("calendar cache disabled", "error", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
	}
	calendarCache := cache.NewCalendarCache(redisClient, cfg.CalendarCacheTTL)

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()
	inspector := asynq.NewInspector(redisConn)
	defer inspector.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	app := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		BodyLimit:    service.MaxUploadSize + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Info(err.Error(), "path", c.Path(), "status", code)
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	themeRepo := repository.NewThemeRepository(db)
	contentRepo := repository.NewContentRepository(db)
	apiKeyRepository := repository.NewApiKeyRepository(db)

	taskQueue := queue.NewQueue(client, inspector)
	webhookClient := service.NewWebhookClient(cfg.N8NWebhookURL, recorder)

	authService := service.NewAuthService(*cfg, userRepo)
	userService := service.NewUserService(userRepo, calendarCache)
	apiKeyService := service.NewApiKeyService(apiKeyRepository)
	r2Service := service.NewR2Service(*cfg)
	themeService := service.NewThemeService(db, themeRepo, contentRepo, calendarCache, recorder, cfg.Location)
	calendarService := service.NewCalendarService(themeRepo, contentRepo, calendarCache, recorder)
	contentService := service.NewContentService(themeRepo, contentRepo, r2Service, recorder)
	generationService := service.NewGenerationService(themeRepo, contentRepo, taskQueue, webhookClient, recorder)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService, userService)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(registry)))

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)
	app.Post("/logout", auth.Logout)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	themes := handlers.NewThemeHandler(themeService)
	calendar := handlers.NewCalendarHandler(calendarService)
	generation := handlers.NewGenerationHandler(generationService)

	planner := api.Group("/planner")
	planner.Get("/template", calendar.Template)
	planner.Get("/distribution", calendar.Distribution)
	planner.Post("/validate", themes.Validate)
	planner.Get("/themes", themes.ListThemes)
	planner.Post("/themes", themes.CreateTheme)
	planner.Get("/themes/by-date", themes.ActiveTheme)
	planner.Get("/themes/:id", themes.GetTheme)
	planner.Put("/themes/:id", themes.UpdateTheme)
	planner.Delete("/themes/:id", themes.DeleteTheme)
	planner.Post("/themes/:id/generate", generation.Generate)
	planner.Post("/sync", generation.Sync)
	planner.Get("/calendar", calendar.Events)
	planner.Get("/calendar.ics", calendar.ICS)

	content := handlers.NewContentHandler(contentService)
	api.Get("/content", content.ListContent)
	api.Get("/content/fulfilled", content.Fulfilled)
	api.Get("/content/theme/:id/summary", content.Summary)
	api.Put("/content/:id", content.UpdateContent)
	api.Post("/content/:id/upload", content.UploadContent)

	admin := handlers.NewAdminHandler(userService)
	adminAPI := api.Group("/admin", authMiddleware.RequireAdmin())
	adminAPI.Get("/users", admin.ListUsers)
	adminAPI.Put("/users/:id/role", admin.UpdateRole)
	adminAPI.Delete("/users/:id", admin.RemoveUser)

	// cron jobs
	syncJob := job.NewThemeSyncJob(generationService)

	c := cron.New()
	if err := syncJob.Schedule(c, cfg.SyncSchedule); err != nil {
		log.Fatalf("Invalid SYNC_SCHEDULE %q: %v", cfg.SyncSchedule, err)
	}
	c.Start()
	defer c.Stop()

	//queue
	worker := queue.NewWorker(generationService)
	server := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: cfg.WorkerConcurrency,
	})

	go func() {
		mux := asynq.NewServeMux()
		worker.Register(mux)

		slog.Info("starting the asynq server", "concurrency", cfg.WorkerConcurrency)
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	slog.Info("server is running", "port", cfg.Port)

	gracefulShutdown(app, server)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, worker *asynq.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("shutting down server")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		slog.Error("failed to shut down server", "error", err)
	}
	worker.Shutdown()

	slog.Info("server shutdown complete")
}
