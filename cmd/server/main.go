package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/talentscreen/screening-api/internal/api"
	"github.com/talentscreen/screening-api/internal/core/service"
	"github.com/talentscreen/screening-api/internal/infrastructure/ai"
	"github.com/talentscreen/screening-api/internal/infrastructure/config"
	"github.com/talentscreen/screening-api/internal/infrastructure/pdf"
	"github.com/talentscreen/screening-api/internal/infrastructure/storage/csvstore"
	"github.com/talentscreen/screening-api/internal/infrastructure/storage/docstore"
	"github.com/talentscreen/screening-api/pkg/logger"
)

func main() {
	ctx := context.Background()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.DataDir).Msg("create data dir")
	}

	// --- Durable stores ---
	adminHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash admin password")
	}
	if cfg.Admin.Password == "admin123" {
		log.Warn().Msg("ADMIN_PASSWORD is the default; set it before going to production")
	}

	accounts, err := csvstore.NewAccountStore(cfg.DataDir+"/users.csv", cfg.Admin.Email, string(adminHash))
	if err != nil {
		log.Fatal().Err(err).Msg("open account store")
	}
	ledger := csvstore.NewSubmissionLedger(cfg.DataDir + "/submissions.csv")

	docs, err := docstore.New(cfg.ResumesDir)
	if err != nil {
		log.Fatal().Err(err).Msg("open document store")
	}

	// --- External model ---
	gemini, err := ai.NewGeminiClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gemini client")
	}

	// --- Services ---
	authService := service.NewAuthService(accounts, cfg.JWTSecret, cfg.TokenTTL, log)
	scoringService := service.NewScoringService(gemini, cfg.Gemini.Timeout, log)
	extractor := pdf.NewExtractor(cfg.ResumesDir, log)
	submissionService := service.NewSubmissionService(docs, extractor, scoringService, ledger, log)

	e := api.NewRouter(cfg, log, authService, submissionService, docs)

	// --- Serve with graceful shutdown ---
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("server stopped")
}
