package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dsaprep/backend/internal/api"
	"github.com/dsaprep/backend/internal/auth"
	"github.com/dsaprep/backend/internal/catalog"
	"github.com/dsaprep/backend/internal/infrastructure/config"
	"github.com/dsaprep/backend/internal/seed"
	"github.com/dsaprep/backend/internal/service"
	"github.com/dsaprep/backend/internal/store"
	"github.com/dsaprep/backend/internal/tutor"

	_ "github.com/dsaprep/backend/docs" // generated swagger docs
)

// @title           DSA Prep API
// @version         1.0
// @description     Progress tracking for DSA practice sheets — question catalogs, per-user completion state, derived statistics, and AI-assisted tutoring.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := seed.Run(startupCtx, db, logger); err != nil {
		logger.Error("failed to seed catalog", "error", err)
		os.Exit(1)
	}

	loader := catalog.NewLoader(db)
	cat, err := loader.Load(startupCtx)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}

	statuses := service.NewStatusStore()
	progressSvc := service.NewProgressService(db, statuses, logger)

	var aiTutor tutor.Tutor = tutor.Disabled{}
	if cfg.GeminiAPIKey != "" {
		aiTutor, err = tutor.NewGeminiTutor(startupCtx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("failed to create tutor", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, tutor endpoints disabled")
	}

	interviewSvc := service.NewInterviewService(aiTutor, logger)
	verifier := auth.NewVerifier(cfg.JWTSecret)
	handler := api.NewHandler(db, loader, cat, statuses, progressSvc, interviewSvc, aiTutor, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → Auth → mux ───────────────
	chained := api.Logging(logger)(api.CORS(verifier.Middleware(mux)))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           chained,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
