package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Fanadillah/kasku-app/internal/api/handlers"
	"github.com/Fanadillah/kasku-app/internal/api/middleware"
	"github.com/Fanadillah/kasku-app/internal/bot"
	"github.com/Fanadillah/kasku-app/internal/config"
	"github.com/Fanadillah/kasku-app/internal/extract"
	"github.com/Fanadillah/kasku-app/internal/logger"
	"github.com/Fanadillah/kasku-app/internal/store"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal().Msg("GOOGLE_API_KEY is required")
	}

	// Two credential tiers: elevated DSN for the write path, restricted
	// one for dashboard reads. They may point at the same role locally.
	writeStore, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open write store")
	}
	defer writeStore.Close()

	readStore := writeStore
	if cfg.DatabaseReadURL != cfg.DatabaseURL {
		readStore, err = store.Open(cfg.DatabaseReadURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open read store")
		}
		defer readStore.Close()
	}

	ctx := context.Background()
	gen, err := extract.NewGeminiGenerator(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create model client")
	}
	svc := extract.NewService(gen, writeStore, log)

	extractHandler := handlers.NewExtractHandler(svc, log)
	statsHandler := handlers.NewStatsHandler(readStore, log)
	transactionsHandler := handlers.NewTransactionsHandler(readStore, log)
	dashboardHandler := handlers.NewDashboardHandler(readStore, svc, log)

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		dashboardHandler.Show(w, r)
	})

	mux.HandleFunc("/submit", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		dashboardHandler.Submit(w, r)
	})

	mux.HandleFunc("/api/extract", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		extractHandler.Extract(w, r)
	})

	mux.HandleFunc("/api/stats", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		statsHandler.Stats(w, r)
	})

	mux.HandleFunc("/api/transactions", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		transactionsHandler.List(w, r)
	})

	if cfg.TelegramBotToken == "" {
		log.Warn().Msg("No TELEGRAM_BOT_TOKEN configured - chat gateway disabled")
	} else {
		tg, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create telegram client")
		}
		apiClient := bot.NewAPIClient(cfg.BaseURL)
		gateway := bot.NewGateway(tg, apiClient, apiClient, cfg.TelegramWebhookSecret, log)

		mux.HandleFunc("/api/telegram/webhook", func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
				return
			}
			gateway.Webhook(w, r)
		})
	}

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     handler,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting KasKu server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
