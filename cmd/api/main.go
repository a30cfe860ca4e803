package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"eventstudio/internal/adapter/repo"
	"eventstudio/internal/http/handlers"
	"eventstudio/internal/http/httpapi"
	"eventstudio/internal/infra"
	"eventstudio/internal/pipeline"
	"eventstudio/internal/providers/groq"
	"eventstudio/internal/providers/hf"
	imgprov "eventstudio/internal/providers/image"
	"eventstudio/internal/providers/text"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	groqClient, err := groq.NewClient(groq.Options{
		APIKey:     cfg.GroqAPIKey,
		BaseURL:    cfg.GroqBaseURL,
		ChatModel:  cfg.GroqChatModel,
		ImageModel: cfg.GroqImageModel,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build groq client")
	}
	hfClient, err := hf.NewClient(hf.Options{
		APIToken:          cfg.HFAPIToken,
		BaseURL:           cfg.HFBaseURL,
		Logger:            &logger,
		MaxLoadingRetries: cfg.HFMaxLoadingRetries,
		LoadingBackoff:    cfg.HFLoadingBackoff,
		RateLimitCooldown: cfg.HFRateLimitCooldown,
		TimeoutRetries:    cfg.HFTimeoutRetries,
		TimeoutBackoff:    cfg.HFTimeoutBackoff,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build hf client")
	}

	textGen := text.NewGroqGenerator(groqClient)
	imageTiers := []imgprov.Generator{
		imgprov.NewGroqGenerator(groqClient),
		imgprov.NewHFGenerator(hfClient, &logger),
	}
	service := pipeline.New(pipeline.Options{
		Text:   textGen,
		Images: imageTiers,
		Logger: &logger,
	})

	// History persistence is optional; without DATABASE_URL the service runs
	// stateless.
	var history handlers.HistoryStore
	ctx := context.Background()
	if cfg.HistoryEnabled() {
		pool, err := infra.NewDBPool(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect database")
		}
		defer pool.Close()
		history = repo.NewHistoryRepository(pool)
	} else {
		logger.Info().Msg("history persistence disabled")
	}

	app := handlers.NewApp(service, textGen, imageTiers, history, &logger)
	router := httpapi.NewRouter(app, cfg, logger)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
