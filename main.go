package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"marketscout/internal/aggregator"
	"marketscout/internal/alpaca"
	"marketscout/internal/cache"
	"marketscout/internal/config"
	"marketscout/internal/finnhub"
	"marketscout/internal/marketaux"
	"marketscout/internal/quality"
	"marketscout/internal/ratelimit"
	"marketscout/internal/search"
	"marketscout/internal/server"
	"marketscout/internal/validation"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	c := cache.New(cfg.TTLs())
	reporter := cache.NewReporter(c, cfg.StatsInterval, logger)
	if err := reporter.Start(); err != nil {
		log.Fatalf("Failed to start cache stats reporter: %v", err)
	}

	router := server.NewRouter(newServices(cfg, c, logger), server.Options{
		Validator:      validation.New(),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("shutting down", "signal", sig.String())

	reporter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
}

// newServices wires upstream clients, the cache and the quality gate into the
// four aggregators.
func newServices(cfg *config.Config, c *cache.Cache, logger *slog.Logger) server.Services {
	limiter := ratelimit.New(cfg.RateLimits())
	opts := aggregator.Options{
		TaskTimeout:    cfg.TaskTimeout,
		RequestTimeout: cfg.RequestTimeout,
		Logger:         logger,
	}

	var analyzer search.Analyzer = search.Unavailable{}
	if cfg.OpenAIAPIKey != "" {
		analyzer = search.NewOpenAIAnalyzer(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	} else {
		logger.Warn("OPENAI_API_KEY not set, search sentiment will be unavailable")
	}

	return server.Services{
		Finnhub: aggregator.NewFinnhub(c,
			finnhub.NewClient(cfg.FinnhubAPIKey, cfg.FinnhubBaseURL, limiter),
			quality.NewGate(cfg.QualityQuorum, cfg.IdentitySentinels),
			cfg.MaxQuarters,
			opts),
		News: aggregator.NewNews(c,
			marketaux.NewClient(cfg.MarketauxAPIKey, cfg.MarketauxBaseURL, limiter),
			opts),
		Stocks: aggregator.NewStocks(c,
			alpaca.NewClient(cfg.AlpacaAPIKey, cfg.AlpacaAPISecret, cfg.AlpacaBaseURL, cfg.AlpacaMaxPages, limiter),
			opts),
		Search: aggregator.NewSearch(c,
			search.NewGoogleNews(cfg.GoogleNewsBaseURL, limiter),
			analyzer,
			opts),
		Cache: c,
	}
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, handlerOpts))
}
