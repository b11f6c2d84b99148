// Package server exposes the aggregators over HTTP.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"marketscout/internal/aggregator"
	"marketscout/internal/alpaca"
	"marketscout/internal/cache"
	"marketscout/internal/finnhub"
	"marketscout/internal/validation"
)

// FinnhubService serves merged company records.
type FinnhubService interface {
	Get(ctx context.Context, symbol, companyName string) (finnhub.Record, error)
}

// NewsService serves recent news per symbol.
type NewsService interface {
	Get(ctx context.Context, symbol, companyName string) (aggregator.NewsResult, error)
}

// StocksService serves historical bars.
type StocksService interface {
	Get(ctx context.Context, q alpaca.BarsQuery) (aggregator.StocksResult, error)
}

// SearchService serves headline sentiment.
type SearchService interface {
	Get(ctx context.Context, company string) (aggregator.SearchResult, error)
}

// CacheAdmin is the operational view of the cache.
type CacheAdmin interface {
	Stats() []cache.ClassStats
	Clear()
}

// Services bundles everything the routes call into.
type Services struct {
	Finnhub FinnhubService
	News    NewsService
	Stocks  StocksService
	Search  SearchService
	Cache   CacheAdmin
}

// Options configure the router.
type Options struct {
	Validator      *validation.Validator
	Logger         *slog.Logger
	AllowedOrigins []string
}

// Handler holds the route handlers.
type Handler struct {
	services  Services
	validator *validation.Validator
	logger    *slog.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(services Services, opts Options) *gin.Engine {
	if opts.Validator == nil {
		opts.Validator = validation.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	h := &Handler{
		services:  services,
		validator: opts.Validator,
		logger:    opts.Logger,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(opts.AllowedOrigins))
	router.Use(requestLogger(opts.Logger))

	router.GET("/", h.Root)
	router.GET("/test", h.Test)

	router.GET("/finnhub/:symbol", h.GetFinnhub)
	router.GET("/news/:symbol", h.GetNews)
	router.GET("/stocks/:symbol", h.GetStocks)
	router.POST("/search", h.PostSearch)

	cacheGroup := router.Group("/cache")
	{
		cacheGroup.GET("/stats", h.CacheStats)
		cacheGroup.POST("/clear", h.CacheClear)
	}

	return router
}

// corsMiddleware allows the configured browser origins. An empty list allows any.
func corsMiddleware(allowed []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" && (len(allowed) == 0 || slices.Contains(allowed, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
