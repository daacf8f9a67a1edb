package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"wealthwise/internal/ai"
	"wealthwise/internal/cache"
	"wealthwise/internal/config"
	"wealthwise/internal/currency"
	apphttp "wealthwise/internal/http"
	applog "wealthwise/internal/log"
	"wealthwise/internal/services"
	"wealthwise/internal/store"
)

func main() {
	// .env is optional; real deployments use the environment directly.
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", applog.FieldError, err.Error())
		os.Exit(1)
	}

	// In-memory stores seeded with demo data.
	transactions := store.NewTransactionStore()
	budgets := store.NewBudgetStore()
	goals := store.NewGoalStore()
	profile := store.NewProfileStore()
	store.Seed(transactions, budgets, goals, time.Now())

	cur := currency.NewService()

	// The advisor is optional: without an API key the rest of the
	// dashboard works and the AI pages explain what is missing.
	var advisor *services.AdvisorService
	if cfg.AIEnabled() {
		gen, err := ai.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Error("Failed to initialize Gemini client", applog.FieldError, err.Error())
			os.Exit(1)
		}
		advisor = services.NewAdvisorService(ai.NewClient(gen), services.AdvisorConfig{
			Timeout:          cfg.AITimeout,
			SummaryCacheSize: cfg.SummaryCacheSize,
			SummaryCacheTTL:  cfg.SummaryCacheTTL,
		}, logger)
		logger.Info("AI advisor enabled", applog.FieldModel, cfg.GeminiModel)
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI advisor disabled")
	}

	report := services.NewReportService(transactions, budgets, goals, profile, cur, time.Now)

	cacheManager := cache.NewManager()
	if advisor != nil {
		cacheManager.Register(advisor.SummaryCache())
	}
	cacheManager.StartCleanup(10 * time.Minute)

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Deps{
		Transactions:       transactions,
		Budgets:            budgets,
		Goals:              goals,
		Profile:            profile,
		Currency:           cur,
		Advisor:            advisor,
		Report:             report,
		Logger:             logger,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})

	srv.ReadTimeout = 10 * time.Second
	// WriteTimeout must cover a full model round trip on the AI routes.
	srv.WriteTimeout = cfg.AITimeout + 15*time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err.Error())
		}
		cacheManager.Stop()
		cancel()
	}()

	logger.Info("Starting wealthwise server", "port", cfg.Port, "ai_enabled", cfg.AIEnabled())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err.Error(), "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
