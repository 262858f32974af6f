package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epistleapp/epistle/internal/auth"
	"github.com/epistleapp/epistle/internal/config"
	"github.com/epistleapp/epistle/internal/contentcache"
	"github.com/epistleapp/epistle/internal/database"
	"github.com/epistleapp/epistle/internal/database/archive"
	"github.com/epistleapp/epistle/internal/database/journal"
	"github.com/epistleapp/epistle/internal/database/status"
	"github.com/epistleapp/epistle/internal/database/users"
	"github.com/epistleapp/epistle/internal/genai"
	http_controllers "github.com/epistleapp/epistle/internal/http"
	"github.com/epistleapp/epistle/internal/localstore"
	"github.com/epistleapp/epistle/internal/reading"
	"github.com/epistleapp/epistle/internal/schedule"
	"github.com/epistleapp/epistle/internal/scheduler"
	"github.com/epistleapp/epistle/internal/scripture"
	"github.com/epistleapp/epistle/internal/syncstore"
	"github.com/epistleapp/epistle/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM. SIGKILL cannot be caught.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the task queue and cron)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Epistle v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	// Local key/value store and the content cache on top of it
	local := localstore.New(db.DB, cfg.Store.CapacityBytes)
	cache := contentcache.New(local)

	// The anchor is recomputed at process start: today always lands on day
	// AnchorOffsetDays+1 of the cycle
	scheduleCfg := schedule.NewConfig(time.Now(), cfg.Schedule.AnchorOffsetDays, schedule.BuildCorpus(schedule.PaulineEpistles))

	// Content generation is optional: without an API key the reading surface
	// is disabled, but schedule, status and journal endpoints keep working.
	var generator genai.Generator
	if cfg.GenAI.APIKey != "" {
		gen, err := genai.NewOpenAIGenerator(genai.Settings{
			APIKey:     cfg.GenAI.APIKey,
			BaseURL:    cfg.GenAI.BaseURL,
			ChatModel:  cfg.GenAI.ChatModel,
			ImageModel: cfg.GenAI.ImageModel,
		})
		if err != nil {
			log.Fatalf("Failed to initialize content generator: %v", err)
		}
		generator = gen
	} else {
		log.Printf("WARNING: GENAI_API_KEY is not set. Reading content endpoints will be disabled.")
	}

	canon := scripture.NewClient(cfg.Scripture.BaseURL)

	// Remote repositories for synced per-user data
	statusRepo := status.NewRepository(db.DB)
	archiveRepo := archive.NewRepository(db.DB)
	journalRepo := journal.NewRepository(db.DB)

	// Initialize authentication if enabled
	var authService *auth.Service
	var authMiddleware *auth.Middleware
	var sessionManager *auth.SessionManager
	var csrfSecret []byte

	if cfg.Auth.Mode == config.AuthModeLocal {
		log.Printf("Authentication mode: local")

		authService = auth.NewService(users.NewRepository(db.DB), cfg.Auth)

		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatalf("Failed to get SQL DB for sessions: %v", err)
		}

		sessionManager, err = auth.NewSessionManager(sqlDB, cfg.Auth)
		if err != nil {
			log.Fatalf("Failed to initialize session manager: %v", err)
		}

		authMiddleware = auth.NewMiddleware(authService, sessionManager, cfg.Auth)

		// Generate or use configured CSRF secret
		if cfg.Auth.SessionSecret != "" {
			csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
			if err != nil {
				// Not hex, use as raw bytes
				csrfSecret = []byte(cfg.Auth.SessionSecret)
			}
		} else {
			secret, err := auth.GenerateSessionSecret()
			if err != nil {
				log.Fatalf("Failed to generate CSRF secret: %v", err)
			}
			csrfSecret, _ = hex.DecodeString(secret)
			log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
		}
	} else {
		log.Printf("Authentication mode: none (no authentication required)")
	}

	// Signed-out requests route to the local mirror only.
	var sessions syncstore.SessionProvider
	if sessionManager != nil {
		sessions = sessionManager.SessionProvider()
	} else {
		sessions = syncstore.SessionFunc(func(context.Context) *syncstore.Session { return nil })
	}

	syncSvc := syncstore.New(local, statusRepo, archiveRepo, journalRepo, sessions)

	var readingSvc *reading.Service
	if generator != nil {
		readingSvc = reading.New(scheduleCfg, cache, generator, canon, syncSvc)
	}

	// Initialize task queue if enabled. Pregeneration needs the reading
	// service, so the queue stays off without a generator.
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	if cfg.Tasks.Enabled && readingSvc != nil {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(tasks.NewPregenerateQueue(readingSvc))

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)
	}

	// Daily cron warm-up rides on the task queue
	var pregenerateScheduler *scheduler.PregenerateScheduler
	if cfg.Pregenerate.Enabled && taskClient != nil {
		pregenerateScheduler = scheduler.NewPregenerateScheduler(taskClient, scheduleCfg, cfg.Pregenerate.Schedule)
		if err := pregenerateScheduler.Start(); err != nil {
			log.Fatalf("Failed to start pregeneration scheduler: %v", err)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Database:       db,
		ScheduleConfig: scheduleCfg,
		Progress:       syncSvc,
		Journal:        syncSvc,
		AuthService:    authService,
		AuthMiddleware: authMiddleware,
		SessionManager: sessionManager,
		AuthConfig:     cfg.Auth,
		CSRFSecret:     csrfSecret,
		SecureCookies:  cfg.Auth.SecureCookies,
		TaskClient:     taskClient,
		Version:        version,
	}
	if readingSvc != nil {
		routerCfg.Reading = readingSvc
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if pregenerateScheduler != nil {
			pregenerateScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
